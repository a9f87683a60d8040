// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package conf wraps kingpin to provide campaign configuration with:
- environment parsing with the SCALABILITY_ prefix,
- env file generation with current values of all registered flags,
- typed flag wrappers that return their default until parsed,
- cumulative slice flags,
- a predefined flag for the logrus log level,
- subcommands for the operator CLI.
*/
package conf
