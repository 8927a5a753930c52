package syntax_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sonar/syntax"
)

var exampleLines = []string{
	"[({(<(())[]>[[{[]{<()<>>",
	"[(()[<>])]({[<{<<[]>>(",
	"{([(<{}[<>[]}>{[]{[(<()>",
	"(((({<>}<{<{<>}{[]{[]{}",
	"[[<[([]))<([[{}[[()]]]",
	"[{[{({}]{}}([{[{{{}}([]",
	"{<[[]]>}<{[{[{[]{()[[[]",
	"[<(<(<(<{}))><([]([]()",
	"<{([([[(<>()){}]>(<<{{",
	"<{([{{}}[<[[[<>{}]]]>[]]",
}

func checkExample() []syntax.Result {
	out := make([]syntax.Result, len(exampleLines))
	for i, l := range exampleLines {
		out[i] = syntax.Check(l)
	}
	return out
}

func TestCheck_Corrupted(t *testing.T) {
	results := checkExample()
	want := map[int][2]rune{ // line -> {expected, found}
		2: {']', '}'},
		4: {']', ')'},
		5: {')', ']'},
		7: {'>', ')'},
		8: {']', '>'},
	}
	for i, r := range results {
		exp, corrupted := want[i]
		if !corrupted {
			assert.Equal(t, syntax.Incomplete, r.Kind, "line %d", i+1)
			continue
		}
		require.Equal(t, syntax.Corrupted, r.Kind, "line %d", i+1)
		assert.Equal(t, exp[0], r.Expected, "line %d expected", i+1)
		assert.Equal(t, exp[1], r.Found, "line %d found", i+1)
	}
	assert.Equal(t, 26397, syntax.ErrorScore(results))
}

func TestCheck_Completion(t *testing.T) {
	results := checkExample()
	var completions []string
	var scores []int
	for _, r := range results {
		if r.Kind == syntax.Incomplete {
			completions = append(completions, r.Completion())
			scores = append(scores, r.CompletionScore())
		}
	}
	wantCompletions := []string{"}}]])})]", ")}>]})", "}}>}>))))", "]]}}]}]}>", "])}>"}
	if diff := cmp.Diff(wantCompletions, completions); diff != "" {
		t.Errorf("completions (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{288957, 5566, 1480781, 995444, 294}, scores)

	mid, err := syntax.MiddleScore(results)
	require.NoError(t, err)
	assert.Equal(t, 288957, mid)
}

func TestCheck_Kinds(t *testing.T) {
	cases := []struct {
		line string
		want syntax.Result
	}{
		{"", syntax.Result{Kind: syntax.Empty}},
		{"   ", syntax.Result{Kind: syntax.Empty}},
		{"()", syntax.Result{Kind: syntax.Complete}},
		{"{()()()}", syntax.Result{Kind: syntax.Complete}},
		{"<([", syntax.Result{Kind: syntax.Incomplete, Open: []rune{'<', '(', '['}}},
		{"(]", syntax.Result{Kind: syntax.Corrupted, Pos: 1, Found: ']', Expected: ')'}},
		{"())", syntax.Result{Kind: syntax.Corrupted, Pos: 2, Found: ')'}},
		{"(x)", syntax.Result{Kind: syntax.Corrupted, Pos: 1, Found: 'x', Expected: ')'}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, syntax.Check(tc.line))
		})
	}
}

func TestScores_OtherKinds(t *testing.T) {
	assert.Zero(t, syntax.Check("(x)").ErrorPoints())
	assert.Zero(t, syntax.Check("()").CompletionScore())
	assert.Zero(t, syntax.Check("((").ErrorPoints())
	assert.Equal(t, 3, syntax.Check("())").ErrorPoints())

	_, err := syntax.MiddleScore([]syntax.Result{syntax.Check("()")})
	assert.ErrorIs(t, err, syntax.ErrNoIncomplete)
}

func TestCheckAll(t *testing.T) {
	results := syntax.CheckAll("()\r\n\n(\n")
	require.Len(t, results, 3)
	assert.Equal(t, syntax.Complete, results[0].Kind)
	assert.Equal(t, syntax.Empty, results[1].Kind)
	assert.Equal(t, syntax.Incomplete, results[2].Kind)
	assert.Equal(t, "incomplete", results[2].Kind.String())
}
