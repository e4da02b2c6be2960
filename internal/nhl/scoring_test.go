package nhl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScorePlayerMatch(t *testing.T) {
	Convey("Given the player Connor McDavid", t, func() {
		name := "Connor McDavid"

		Convey("An exact full-name query scores 100", func() {
			So(ScorePlayerMatch(name, []string{"connor", "mcdavid"}), ShouldEqual, ScoreExact)
		})

		Convey("Case does not matter", func() {
			So(ScorePlayerMatch(name, []string{"Connor", "McDavid"}), ShouldEqual, ScoreExact)
		})

		Convey("A surname-only query with an exact surname scores 70", func() {
			So(ScorePlayerMatch(name, []string{"mcdavid"}), ShouldEqual, 70)
		})

		Convey("A surname-only query with a partial surname scores 50", func() {
			So(ScorePlayerMatch(name, []string{"mcdav"}), ShouldEqual, 50)
		})

		Convey("A single token matching only the first name scores 20", func() {
			So(ScorePlayerMatch(name, []string{"connor"}), ShouldEqual, 20)
		})

		Convey("A multi-token query whose surname does not match scores 0", func() {
			// "connor" alone must not pull in the wrong Connor
			So(ScorePlayerMatch(name, []string{"connor", "bedard"}), ShouldEqual, 0)
		})

		Convey("A multi-token query with matching surname and a partial first name scores 80", func() {
			So(ScorePlayerMatch(name, []string{"con", "mcdavid"}), ShouldEqual, ScoreConfident)
		})

		Convey("A multi-token query with matching surname but an unrelated first name scores 40", func() {
			So(ScorePlayerMatch(name, []string{"philip", "mcdavid"}), ShouldEqual, 40)
		})

		Convey("An unrelated single token scores 0", func() {
			So(ScorePlayerMatch(name, []string{"zzq"}), ShouldEqual, 0)
		})
	})

	Convey("Degenerate inputs score 0", t, func() {
		So(ScorePlayerMatch("", []string{"mcdavid"}), ShouldEqual, 0)
		So(ScorePlayerMatch("Connor McDavid", nil), ShouldEqual, 0)
	})

	Convey("Only an exact full-name match reaches 100", t, func() {
		So(ScorePlayerMatch("Connor McDavid Jr", []string{"connor", "mcdavid"}), ShouldBeLessThan, ScoreExact)
	})
}
