package session_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/session"
)

func TestTwistRecordJSON(t *testing.T) {
	rec := session.TwistRecord{Ray: "R", Order: -1, Grips: [][]int{{2, -2}, {0, 0}}}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `[["R",-1],[[2,-2],[0,0]]]`, string(data))

	var back session.TwistRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)

	data, err = json.Marshal(session.TwistRecord{Ray: "U", Order: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `[["U",1],[]]`, string(data))
}

func TestTwistRecordJSON_Malformed(t *testing.T) {
	for _, in := range []string{
		`{"ray":"R"}`,
		`[["R",1]]`,
		`[["R"],[[1,-1]]]`,
		`[[1,1],[[1,-1]]]`,
		`[["R","x"],[[1,-1]]]`,
		`[["R",1],"grips"]`,
	} {
		var rec session.TwistRecord
		assert.Error(t, json.Unmarshal([]byte(in), &rec), in)
	}
}

func TestExtractReplay_RoundTrip(t *testing.T) {
	s := newCube3()
	s.Scramble(rand.New(rand.NewSource(11)), puzzle.WithMoves(30))
	s.Twist(tw(cube.U, 1), [][]int{{2, -2}})
	s.Twist(tw(cube.L, -1), [][]int{{-2, 2}, {0, 0}})

	log := session.Extract(s, "Cube Nnn(3)")
	assert.Equal(t, session.CurrentVersion, log.Version)
	assert.Equal(t, s.ID().String(), log.ID)
	require.Len(t, log.Scramble, 27)
	require.Len(t, log.Twists, 2)

	var buf bytes.Buffer
	require.NoError(t, session.Encode(&buf, log))
	decoded, err := session.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, log, decoded)

	back, err := session.Replay(decoded, puzzle.MakeSolved[cube.Ray](cube3))
	require.NoError(t, err)
	assert.Equal(t, s.ID(), back.ID())
	assert.Equal(t, s.Puzzle().Orientations(), back.Puzzle().Orientations())
	assert.Equal(t, s.Baseline(), back.Baseline())
	assert.Equal(t, s.Twists(), back.Twists())

	// History survives the round trip.
	require.NoError(t, back.Undo())
	require.NoError(t, back.Undo())
	assert.Equal(t, back.Baseline(), back.Puzzle().Orientations())
}

func TestExtractReplay_RedoStack(t *testing.T) {
	s := newCube3()
	s.Twist(tw(cube.R, 1), [][]int{{2, -2}})
	s.Twist(tw(cube.U, -1), [][]int{{0, 0}})
	s.Twist(tw(cube.F, 2), [][]int{{-2, 2}})
	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())

	log := session.Extract(s, "Cube Nnn(3)")
	require.Len(t, log.Twists, 1)
	assert.Equal(t, []session.TwistRecord{
		{Ray: "F", Order: 2, Grips: [][]int{{-2, 2}}},
		{Ray: "U", Order: -1, Grips: [][]int{{0, 0}}},
	}, log.UndidTwists)

	var buf bytes.Buffer
	require.NoError(t, session.Encode(&buf, log))
	assert.Contains(t, buf.String(), `"undid_twists"`)
	decoded, err := session.Decode(&buf)
	require.NoError(t, err)

	back, err := session.Replay(decoded, puzzle.MakeSolved[cube.Ray](cube3))
	require.NoError(t, err)
	assert.Equal(t, s.Puzzle().Orientations(), back.Puzzle().Orientations())
	assert.Equal(t, s.UndidTwists(), back.UndidTwists())

	// Redo picks up where the saved session left off.
	require.NoError(t, back.Redo())
	require.NoError(t, s.Redo())
	assert.Equal(t, s.Puzzle().Orientations(), back.Puzzle().Orientations())
	require.NoError(t, back.Redo())
	assert.ErrorIs(t, back.Redo(), session.ErrNoRedoAvailable)
}

func TestExtract_NoRedoStackOmitted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, session.Encode(&buf, session.Extract(newCube3(), "Cube Nnn(3)")))
	assert.NotContains(t, buf.String(), "undid_twists")
}

func TestReplay_Invalid(t *testing.T) {
	good := session.Extract(newCube3(), "Cube Nnn(3)")

	shortRow := cloneLog(good)
	shortRow.Scramble[3] = shortRow.Scramble[3][:5]

	badName := cloneLog(good)
	badName.Scramble[0][0] = "Q"

	fewRows := cloneLog(good)
	fewRows.Scramble = fewRows.Scramble[:26]

	badRay := cloneLog(good)
	badRay.Twists = []session.TwistRecord{{Ray: "X", Order: 1, Grips: [][]int{{2, -2}}}}

	badGrip := cloneLog(good)
	badGrip.Twists = []session.TwistRecord{{Ray: "U", Order: 1, Grips: [][]int{{1, -1}}}}

	dup := cloneLog(good)
	dup.Scramble[1][1] = "U"

	badRedo := cloneLog(good)
	badRedo.UndidTwists = []session.TwistRecord{{Ray: "R", Order: 1, Grips: [][]int{{3, -3}}}}

	for name, log := range map[string]session.Log{
		"short row": shortRow, "bad name": badName, "few rows": fewRows,
		"bad ray": badRay, "bad grip": badGrip, "duplicate occupant": dup,
		"bad redo grip": badRedo,
	} {
		t.Run(name, func(t *testing.T) {
			p := puzzle.MakeSolved[cube.Ray](cube3)
			_, err := session.Replay(log, p)
			require.ErrorIs(t, err, session.ErrInvalidReplayData)
			assert.NotContains(t, err.Error(), "log from version")
			assert.True(t, p.IsSolved())
		})
	}
}

func TestReplay_VersionMismatch(t *testing.T) {
	log := session.Extract(newCube3(), "Cube Nnn(3)")
	log.Version = "0.9.0"
	assert.True(t, session.VersionMismatch(log))

	// A mismatch alone still loads.
	_, err := session.Replay(log, puzzle.MakeSolved[cube.Ray](cube3))
	require.NoError(t, err)

	// A failed load names the source version.
	log.Scramble[0] = log.Scramble[0][:1]
	_, err = session.Replay(log, puzzle.MakeSolved[cube.Ray](cube3))
	require.ErrorIs(t, err, session.ErrInvalidReplayData)
	assert.Contains(t, err.Error(), "(log from version 0.9.0)")
}

func TestReplay_MissingID(t *testing.T) {
	log := session.Extract(newCube3(), "Cube Nnn(3)")
	log.ID = ""
	s, err := session.Replay(log, puzzle.MakeSolved[cube.Ray](cube3))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID().String())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := session.Decode(bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}

func cloneLog(l session.Log) session.Log {
	out := l
	out.Scramble = make([][]string, len(l.Scramble))
	for i, row := range l.Scramble {
		out.Scramble[i] = append([]string(nil), row...)
	}
	out.Twists = append([]session.TwistRecord(nil), l.Twists...)
	out.UndidTwists = append([]session.TwistRecord(nil), l.UndidTwists...)

	return out
}
