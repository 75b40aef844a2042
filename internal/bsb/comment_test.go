package bsb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplitComment(t *testing.T) {
	got := splitComment("a\tb\r\nc\n")
	want := []string{"a", "b", "", "c", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitComment() mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentKeepsBlankLines(t *testing.T) {
	h := Build(buffer("[C]", "CR=first\n\nsecond"), Options{})
	assert.Equal(t, []string{"first", "", "second"}, h.Comments)
	assert.Equal(t, []string{"! first", "! ", "! second", "VER/2.0"}, render(t, h)[:4])
}

func TestCommentOverrideWhenFieldMissing(t *testing.T) {
	buf := buffer("[C]", "CR=note\nBSBHDR KNP/SK=5.0,TA=45.0")
	h := Build(buf, Options{})

	assert.Equal(t, "5.0", h.Skew)
	assert.Equal(t, "45.0", h.TextAngle)
	assert.Equal(t, []string{"note"}, h.Comments)
}

func TestCommentDoesNotOverrideExistingField(t *testing.T) {
	buf := buffer("[C]", "SK=2.0", "CR=BSBHDR KNP/SK=5.0")
	h := Build(buf, Options{})

	// the injected SK=5.0 follows the record's own SK, and the first match wins
	assert.Equal(t, "2.0", h.Skew)
	assert.Equal(t, "SK=5.0", buf.Line(buf.Len()-1))
}

func TestCommentBSBCommand(t *testing.T) {
	h := Build(buffer("[C]", "CR=BSBHDR   BSB/NA=From comment,NU=77"), Options{})
	assert.Equal(t, "From comment", h.Name)
	assert.Equal(t, "77", h.Number)
	assert.Empty(t, h.Comments)
}

func TestCommentAddLines(t *testing.T) {
	buf := buffer("[C]", "CR=BSBHDR CED/SE=1\tfree text\tBSBHDR DTM/0.5,0.5")
	h := Build(buf, Options{})

	assert.Equal(t, []string{"CED/SE=1", "DTM/0.5,0.5"}, h.Extra)
	assert.Equal(t, []string{"free text"}, h.Comments)
	assert.Equal(t, "CED/SE=1", buf.Field("ADD1"))
}

func TestCommentStopsAtEmptyParam(t *testing.T) {
	buf := buffer("[C]", "CR=BSBHDR KNP/SK=1,,TA=3")
	h := Build(buf, Options{})
	assert.Equal(t, "1", h.Skew)
	assert.Equal(t, DefaultTextAngle, h.TextAngle)
}

func TestCommentDoesNotAffectEarlyFields(t *testing.T) {
	// scale and projection are read before the comment is applied
	h := Build(buffer("[C]", "CR=BSBHDR KNP/SC=20000,PR=1"), Options{})
	assert.Equal(t, int64(-2147483647), h.Scale)
	assert.Equal(t, Unknown, h.Projection)
}
