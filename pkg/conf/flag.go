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

package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "SCALABILITY"

// flagType is an internal interface for all flags.
// Every flag can name its environment variable, clear it and serialize its current value.
type flagType interface {
	envName() string
	clear()
	current() string
}

// definedFlags stores all the defined flags so redefinitions can be detected.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents option's definition from CLI and environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic(fmt.Sprintf("flag %q was already defined", flagName))
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns name converted to environment variable name.
// For instance: "latency_threshold" will be "SCALABILITY_LATENCY_THRESHOLD".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// lookup returns already registered flag of the same name.
func lookup(flagName string) (flagType, bool) {
	flag, ok := definedFlags[flagName]
	return flag, ok
}

func redefinitionPanic(flagName, reason string) {
	panic(fmt.Sprintf("flag %q was redefined %s", flagName, reason))
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*StringFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if flagDef.defaultValue != defaultValue {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (s StringFlag) current() string { return s.Value() }

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}
	return *s.value
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*IntFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if flagDef.defaultValue != defaultValue {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (i IntFlag) current() string { return strconv.Itoa(i.Value()) }

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}
	return *i.value
}

// FloatFlag represents flag with float64 value, e.g. thresholds and request rates.
type FloatFlag struct {
	*cliAndEnvFlag
	defaultValue float64
	value        *float64
}

// NewFloatFlag is a constructor of FloatFlag struct.
func NewFloatFlag(flagName string, description string, defaultValue float64) *FloatFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*FloatFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if flagDef.defaultValue != defaultValue {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &FloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatFloat(defaultValue, 'f', -1, 64)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Float64()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (f FloatFlag) current() string { return strconv.FormatFloat(f.Value(), 'f', -1, 64) }

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (f FloatFlag) Value() float64 {
	if !isEnvParsed {
		return f.defaultValue
	}
	return *f.value
}

// SliceFlag represents flag with slice value.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
}

// NewSliceFlag is a constructor of SliceFlag struct.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*SliceFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if strings.Join(flagDef.defaultValue, stringListDelimiter) != strings.Join(elemsInDefaultSlice, stringListDelimiter) {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter)),
		defaultValue:  elemsInDefaultSlice,
	}
	flagDef.value = StringList(flagDef)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (s SliceFlag) current() string { return strings.Join(s.Value(), stringListDelimiter) }

// Value returns value of defined flag after parse.
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return []string{}
	}
	return *s.value
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*BoolFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if flagDef.defaultValue != defaultValue {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (b BoolFlag) current() string { return strconv.FormatBool(b.Value()) }

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}
	return *b.value
}

// DurationFlag represents flag with duration value.
type DurationFlag struct {
	*cliAndEnvFlag
	defaultValue time.Duration
	value        *time.Duration
}

// NewDurationFlag is a constructor of DurationFlag struct.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	if duplicated, ok := lookup(flagName); ok {
		flagDef, ok := duplicated.(*DurationFlag)
		if !ok {
			redefinitionPanic(flagName, "with different type")
		}
		if flagDef.defaultValue != defaultValue {
			redefinitionPanic(flagName, "with different default value")
		}
		return flagDef
	}

	flagDef := &DurationFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue.String()),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Duration()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

func (d DurationFlag) current() string { return d.Value().String() }

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (d DurationFlag) Value() time.Duration {
	if !isEnvParsed {
		return d.defaultValue
	}
	return *d.value
}
