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

package stopcondition

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPredicate(t *testing.T) {
	Convey("When using predicates", t, func() {
		Convey("Each registered predicate has its symbol", func() {
			So(GreaterOrEqual.String(), ShouldEqual, ">=")
			So(Greater.String(), ShouldEqual, ">")
			So(LessOrEqual.String(), ShouldEqual, "<=")
			So(Less.String(), ShouldEqual, "<")
			So(Equal.String(), ShouldEqual, "==")
			So(NotEqual.String(), ShouldEqual, "!=")
		})

		Convey("Comparisons follow their symbols", func() {
			So(GreaterOrEqual.Holds(2, 2), ShouldBeTrue)
			So(Greater.Holds(2, 2), ShouldBeFalse)
			So(LessOrEqual.Holds(2, 2), ShouldBeTrue)
			So(Less.Holds(1, 2), ShouldBeTrue)
			So(Equal.Holds(1, 2), ShouldBeFalse)
			So(NotEqual.Holds(1, 2), ShouldBeTrue)
		})

		Convey("Unregistered predicate is rendered generically and never holds", func() {
			unknown := Predicate(42)
			So(unknown.String(), ShouldEqual, "Predicate(42)")
			So(unknown.Holds(1, 1), ShouldBeFalse)
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("When evaluating stop conditions", t, func() {
		Convey("No conditions means no stop", func() {
			decision := Evaluate()
			So(decision.Stop, ShouldBeFalse)
			So(decision.Triggered, ShouldBeEmpty)
			So(decision.TriggeredLabels, ShouldBeEmpty)
		})

		Convey("Any triggered condition stops the campaign", func() {
			decision := Evaluate(
				Condition{Observed: 1, Threshold: 5, Predicate: GreaterOrEqual, ObservedLabel: "errors", ThresholdLabel: "limit"},
				Condition{Observed: 0.5, Threshold: 0.9, Predicate: Less, ObservedLabel: "throughput ratio", ThresholdLabel: "minimum"},
			)
			So(decision.Stop, ShouldBeTrue)
			So(decision.Triggered, ShouldResemble, []string{"throughput ratio 0.5 < minimum 0.9"})
			So(decision.Okay, ShouldResemble, []string{"errors 1 >= limit 5"})
		})

		Convey("Unregistered predicate does not break evaluation", func() {
			decision := Evaluate(Condition{Observed: 3, Threshold: 3, Predicate: Predicate(99), ObservedLabel: "a", ThresholdLabel: "b"})
			So(decision.Stop, ShouldBeFalse)
			So(decision.Okay, ShouldResemble, []string{"a 3 Predicate(99) b 3"})
		})
	})
}

func TestEvaluateLatencyFailureIteration(t *testing.T) {
	Convey("When evaluating latency, failure rate and iteration", t, func() {
		Convey("Latency breach stops with exactly one reason", func() {
			decision := EvaluateLatencyFailureIteration(100, 50, 0, 0.1, 1, 10)
			So(decision.Stop, ShouldBeTrue)
			So(decision.Triggered, ShouldResemble, []string{"latency 100 >= threshold 50"})
			So(decision.Okay, ShouldHaveLength, 2)
			So(decision.TriggeredBy(LatencyLabel), ShouldBeTrue)
			So(decision.TriggeredBy(FailureRateLabel), ShouldBeFalse)
			So(decision.TriggeredBy(IterationLabel), ShouldBeFalse)
		})

		Convey("Exhausted iterations are told apart from threshold breaches", func() {
			decision := EvaluateLatencyFailureIteration(10, 50, 0, 0.1, 10, 10)
			So(decision.Stop, ShouldBeTrue)
			So(decision.TriggeredLabels, ShouldResemble, []string{IterationLabel})
			So(decision.TriggeredBy(LatencyLabel), ShouldBeFalse)
		})

		Convey("Everything within thresholds continues", func() {
			decision := EvaluateLatencyFailureIteration(10, 50, 0, 0.1, 1, 10)
			So(decision.Stop, ShouldBeFalse)
			So(decision.Triggered, ShouldBeEmpty)
			So(decision.Okay, ShouldResemble, []string{
				"latency 10 >= threshold 50",
				"failure rate 0 >= threshold 0.1",
				"iteration 1 >= max iterations 10",
			})
		})

		Convey("Reaching threshold exactly is a breach", func() {
			So(EvaluateLatencyFailureIteration(50, 50, 0, 0.1, 1, 10).Stop, ShouldBeTrue)
			So(EvaluateLatencyFailureIteration(10, 50, 0.1, 0.1, 1, 10).Stop, ShouldBeTrue)
			So(EvaluateLatencyFailureIteration(10, 50, 0, 0.1, 10, 10).Stop, ShouldBeTrue)
		})

		Convey("All breaches are reported", func() {
			decision := EvaluateLatencyFailureIteration(100, 50, 0.5, 0.1, 10, 10)
			So(decision.Triggered, ShouldHaveLength, 3)
			So(decision.Okay, ShouldBeEmpty)
		})
	})
}
