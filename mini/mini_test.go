package mini

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestListenedPercentage(t *testing.T) {
	Convey("listenedPercentage", t, func() {
		Convey("Should report raw progress below the completion threshold", func() {
			So(listenedPercentage(30, 100, 95), ShouldAlmostEqual, 30)
			So(listenedPercentage(94, 100, 95), ShouldAlmostEqual, 94)
		})

		Convey("Should round up to finished at the completion threshold", func() {
			So(listenedPercentage(95, 100, 95), ShouldAlmostEqual, 100)
			So(listenedPercentage(99, 100, 95), ShouldAlmostEqual, 100)
		})

		Convey("Should leave progress untouched when the threshold is unset", func() {
			So(listenedPercentage(99, 100, 0), ShouldAlmostEqual, 99)
		})
	})
}
