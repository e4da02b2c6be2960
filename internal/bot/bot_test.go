package bot

import (
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSplitPlayoffsFlag(t *testing.T) {
	Convey("A trailing playoffs token is stripped from the query", t, func() {
		query, playoffs := splitPlayoffsFlag([]string{"sidney", "crosby", "playoffs"})
		So(query, ShouldEqual, "sidney crosby")
		So(playoffs, ShouldBeTrue)

		query, playoffs = splitPlayoffsFlag([]string{"pens", "PLAYOFFS"})
		So(query, ShouldEqual, "pens")
		So(playoffs, ShouldBeTrue)
	})

	Convey("Without the flag the query passes through joined", t, func() {
		query, playoffs := splitPlayoffsFlag([]string{"sidney", "crosby"})
		So(query, ShouldEqual, "sidney crosby")
		So(playoffs, ShouldBeFalse)
	})

	Convey("Empty arguments yield an empty query", t, func() {
		query, playoffs := splitPlayoffsFlag(nil)
		So(query, ShouldBeEmpty)
		So(playoffs, ShouldBeFalse)
	})
}

func TestFormatCountdown(t *testing.T) {
	Convey("Countdowns render the significant units", t, func() {
		So(formatCountdown(50*time.Hour+31*time.Minute), ShouldEqual, "2d 2h 31m")
		So(formatCountdown(5*time.Hour+31*time.Minute), ShouldEqual, "5h 31m")
		So(formatCountdown(31*time.Minute), ShouldEqual, "31m")
		So(formatCountdown(24*time.Hour), ShouldEqual, "1d 0h 0m")
	})

	Convey("A game already underway says so", t, func() {
		So(formatCountdown(0), ShouldEqual, "Game time!")
		So(formatCountdown(-time.Minute), ShouldEqual, "Game time!")
	})
}

func TestTruncateDescription(t *testing.T) {
	Convey("Short descriptions pass through", t, func() {
		So(truncateDescription("hello"), ShouldEqual, "hello")
	})

	Convey("Long descriptions are cut at a line boundary with an ellipsis", t, func() {
		long := strings.Repeat("a line of text\n", 400)
		out := truncateDescription(long)

		So(len(out), ShouldBeLessThanOrEqualTo, maxDescriptionLen+4)
		So(out, ShouldEndWith, "…")
		So(strings.HasSuffix(strings.TrimSuffix(out, "\n…"), "text"), ShouldBeTrue)
	})
}

func TestTeamQuery(t *testing.T) {
	Convey("Everything after the command name joins into the team query", t, func() {
		So(teamQuery([]string{"countdown", "new", "york", "rangers"}), ShouldEqual, "new york rangers")
		So(teamQuery([]string{"countdown", "pens"}), ShouldEqual, "pens")
		So(teamQuery([]string{"countdown"}), ShouldBeEmpty)
	})
}
