package origami_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/input"
	"github.com/katalvlaran/sonar/origami"
)

const exampleManual = `6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`

func TestExampleManual(t *testing.T) {
	p, folds, err := origami.ParseManual(exampleManual)
	require.NoError(t, err)
	require.Equal(t, []origami.Fold{{Axis: origami.AxisY, Line: 7}, {Axis: origami.AxisX, Line: 5}}, folds)
	assert.Equal(t, 18, p.CountDots())

	require.NoError(t, p.Fold(folds[0]))
	assert.Equal(t, 17, p.CountDots())
	w, h := p.Dimensions()
	assert.Equal(t, [2]int{11, 7}, [2]int{w, h})

	require.NoError(t, p.Fold(folds[1]))
	assert.Equal(t, 16, p.CountDots())

	want := "" +
		"#####\n" +
		"#...#\n" +
		"#...#\n" +
		"#...#\n" +
		"#####\n" +
		".....\n" +
		".....\n"
	assert.Equal(t, want, p.Render())
}

func TestFold_DotOnLineVanishes(t *testing.T) {
	p, err := origami.New([][2]int{{0, 0}, {1, 0}, {2, 0}})
	require.NoError(t, err)
	require.NoError(t, p.Fold(origami.Fold{Axis: origami.AxisX, Line: 1}))
	assert.Equal(t, 1, p.CountDots())
	assert.Equal(t, "#\n", p.Render())
}

func TestFold_OutOfBounds(t *testing.T) {
	p, err := origami.New([][2]int{{0, 0}, {5, 0}})
	require.NoError(t, err)

	err = p.Fold(origami.Fold{Axis: origami.AxisX, Line: 1})
	assert.ErrorIs(t, err, origami.ErrFoldOutOfBounds)
	assert.Equal(t, 2, p.CountDots(), "failed fold leaves the sheet unchanged")

	assert.ErrorIs(t, p.Fold(origami.Fold{Axis: origami.AxisY, Line: 1}), origami.ErrFoldOutOfBounds)
	assert.ErrorIs(t, p.Fold(origami.Fold{Axis: origami.AxisX, Line: 6}), origami.ErrFoldOutOfBounds)
	assert.ErrorIs(t, p.Fold(origami.Fold{Axis: origami.AxisX, Line: -1}), origami.ErrFoldOutOfBounds)
}

func TestParseFold(t *testing.T) {
	f, err := origami.ParseFold("fold along x=655")
	require.NoError(t, err)
	assert.Equal(t, origami.Fold{Axis: origami.AxisX, Line: 655}, f)
	assert.Equal(t, "fold along x=655", f.String())

	for _, s := range []string{"fold x=1", "fold along z=1", "fold along y1", "fold along y=a"} {
		_, err := origami.ParseFold(s)
		assert.ErrorIs(t, err, input.ErrParse, s)
	}
}

func TestParseManual_Errors(t *testing.T) {
	_, _, err := origami.ParseManual("")
	assert.ErrorIs(t, err, origami.ErrNoDots)

	_, _, err = origami.ParseManual("1,2,3\n\nfold along x=1\n")
	assert.ErrorIs(t, err, input.ErrParse)

	_, _, err = origami.ParseManual("1,2\n\nfold along q=1\n")
	assert.ErrorIs(t, err, input.ErrParse)
}

func TestParseManual_ErrorLine(t *testing.T) {
	var pe *input.ParseError

	_, _, err := origami.ParseManual("1,2\n3,x\n\nfold along y=1\n")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "3,x", pe.Text)

	_, _, err = origami.ParseManual("1,2\n3,4\n\nfold along y=1\nfold along q=1\n")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.Equal(t, "fold along q=1", pe.Text)
}
