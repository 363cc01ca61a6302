package baryogen

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLocalSimulator(t *testing.T) {
	Convey("Given a seeded local simulator", t, func() {
		model, err := NewDecayModel(0.1)
		So(err, ShouldBeNil)

		Convey("When running a fixed number of shots", func() {
			tally, err := NewLocalSimulator(42).Run(model, 500)
			So(err, ShouldBeNil)

			Convey("Then every shot decays into exactly one branch", func() {
				So(tally.Total(), ShouldEqual, 500)
			})
		})

		Convey("When running twice with the same seed", func() {
			first, err := NewLocalSimulator(42).Run(model, 2000)
			So(err, ShouldBeNil)
			second, err := NewLocalSimulator(42).Run(model, 2000)
			So(err, ShouldBeNil)

			Convey("Then the runs reproduce exactly", func() {
				So(first.Matter, ShouldEqual, second.Matter)
				So(first.Antimatter, ShouldEqual, second.Antimatter)
				So(first.Counts, ShouldResemble, second.Counts)
			})
		})

		Convey("When asked for a non-positive shot count", func() {
			for _, shots := range []int{0, -1} {
				tally, err := NewLocalSimulator(1).Run(model, shots)
				So(tally, ShouldBeNil)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("When run without a model", func() {
			tally, err := NewLocalSimulator(1).Run(nil, 100)
			So(tally, ShouldBeNil)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given the simulator behind the Simulator interface", t, func() {
		var sim Simulator = NewLocalSimulator(7)
		model, err := NewDecayModel(0)
		So(err, ShouldBeNil)

		tally, err := sim.Run(model, 100)
		So(err, ShouldBeNil)
		So(tally.Total(), ShouldEqual, 100)
	})
}
