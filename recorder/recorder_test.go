package recorder_test

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/recorder"
	"github.com/katalvlaran/fracpde/solution"
	"github.com/katalvlaran/fracpde/stepper"
)

// runSmallest runs the 3×2 scenario, streaming every level into rec.
func runSmallest(t *testing.T, rec recorder.Recorder) recorder.RunInfo {
	t.Helper()

	g, err := grid.Build(1, 0.1, 0.5, 0.1)
	require.NoError(t, err)
	sol, err := solution.Initialize(g,
		solution.DefaultInitial(), solution.DefaultLeft(), solution.DefaultRight())
	require.NoError(t, err)

	info := recorder.RunInfo{
		ID:    recorder.NewRunID(),
		Alpha: 1, C: 1,
		XMax: 1, TMax: 0.1, Dx: 0.5, Dt: 0.1,
		Solver: "lapack", History: "direct",
		X: g.X(), T: g.T(),
	}
	require.NoError(t, rec.Begin(info))
	row0, err := sol.Row(0)
	require.NoError(t, err)
	require.NoError(t, rec.WriteRow(0, 0, row0))

	sink := recorder.NewSink(rec)
	s, err := stepper.New(g, sol, stepper.Params{Alpha: 1, C: 1}, stepper.WithOnStep(sink.OnStep))
	require.NoError(t, err)
	out, err := s.Run()
	require.NoError(t, err)
	require.NoError(t, sink.Finish(out.String()))

	return info
}

func TestSQLite_RecordsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sqlite3")
	rec, err := recorder.NewSQLite(path)
	require.NoError(t, err)

	info := runSmallest(t, rec)
	assert.Equal(t, info.ID, rec.RunID())
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var outcome string
	var nSpace, mTime int
	require.NoError(t, db.QueryRow(
		`SELECT outcome, n_space, m_time FROM runs WHERE id = ?`, info.ID,
	).Scan(&outcome, &nSpace, &mTime))
	assert.Equal(t, "Completed", outcome)
	assert.Equal(t, 3, nSpace)
	assert.Equal(t, 2, mTime)

	var axes int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM axes WHERE run_id = ?`, info.ID).Scan(&axes))
	assert.Equal(t, 5, axes)

	rows, err := db.Query(`SELECT u FROM cells WHERE run_id = ? AND n = 1 ORDER BY j`, info.ID)
	require.NoError(t, err)
	defer rows.Close()
	var got []float64
	for rows.Next() {
		var u float64
		require.NoError(t, rows.Scan(&u))
		got = append(got, u)
	}
	require.NoError(t, rows.Err())
	assert.InDeltaSlice(t, []float64{0, 10.0 / 14.0, 1}, got, 1e-12)
}

func TestSQLite_Errors(t *testing.T) {
	rec, err := recorder.NewSQLite(filepath.Join(t.TempDir(), "err.sqlite3"))
	require.NoError(t, err)
	defer rec.Close()

	assert.ErrorIs(t, rec.WriteRow(0, 0, []float64{1}), recorder.ErrNotStarted)
	assert.ErrorIs(t, rec.Finish("Completed"), recorder.ErrNotStarted)

	require.NoError(t, rec.Begin(recorder.RunInfo{X: []float64{0, 0.5, 1}, T: []float64{0}}))
	assert.NotEmpty(t, rec.RunID())
	assert.ErrorIs(t, rec.WriteRow(0, 0, []float64{1, 2}), recorder.ErrRowLength)
}

func TestCSV_RecordsRun(t *testing.T) {
	var buf bytes.Buffer
	rec := recorder.NewCSV(&buf)
	runSmallest(t, rec)
	require.NoError(t, rec.Close())

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"n", "t", "0.0000", "0.5000", "1.0000"}, lines[0])
	assert.Equal(t, []string{"0", "0", "0", "1", "1"}, lines[1])
	assert.Equal(t, "1", lines[2][0])
	assert.Equal(t, "0.1", lines[2][1])
	u, err := strconv.ParseFloat(lines[2][3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/14.0, u, 1e-12)
}

func TestMulti_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	rec := recorder.Multi(recorder.NewCSV(&a), recorder.NewCSV(&b))
	runSmallest(t, rec)
	require.NoError(t, rec.Close())

	assert.NotEmpty(t, a.String())
	assert.Equal(t, a.String(), b.String())
}

func TestSink_StopsAtFirstError(t *testing.T) {
	var buf bytes.Buffer
	rec := recorder.NewCSV(&buf) // Begin never called
	sink := recorder.NewSink(rec)

	sink.OnStep(stepper.StepEvent{Step: 0, Row: []float64{1}})
	sink.OnStep(stepper.StepEvent{Step: 1, Row: []float64{1}})
	assert.Equal(t, 2, sink.Pending())

	err := sink.Finish("Completed")
	assert.ErrorIs(t, err, recorder.ErrNotStarted)
	assert.Equal(t, 2, sink.Pending())
	assert.Empty(t, buf.String())
}

// countingWriter counts the bytes that reach it.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestSink_NoWritesWhileStepping(t *testing.T) {
	g, err := grid.Build(1, 2, 0.1, 0.01)
	require.NoError(t, err)
	sol, err := solution.Initialize(g,
		solution.DefaultInitial(), solution.DefaultLeft(), solution.DefaultRight())
	require.NoError(t, err)

	var w countingWriter
	rec := recorder.NewCSV(&w)
	require.NoError(t, rec.Begin(recorder.RunInfo{X: g.X(), T: g.T()}))
	row0, err := sol.Row(0)
	require.NoError(t, err)
	require.NoError(t, rec.WriteRow(0, 0, row0))

	sink := recorder.NewSink(rec)
	maxWrites := 0
	s, err := stepper.New(g, sol, stepper.Params{Alpha: 0.5, A: 1, C: 1},
		stepper.WithOnStep(sink.OnStep),
		stepper.WithOnStep(func(stepper.StepEvent) { maxWrites = max(maxWrites, w.writes) }))
	require.NoError(t, err)

	out, err := s.Run()
	require.NoError(t, err)
	assert.Zero(t, maxWrites)
	assert.Zero(t, w.writes)
	assert.Equal(t, g.M()-1, sink.Pending())

	require.NoError(t, sink.Finish(out.String()))
	assert.Positive(t, w.writes)
	assert.Zero(t, sink.Pending())

	lines, err := csv.NewReader(&w.Buffer).ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, g.M()+1)
}
