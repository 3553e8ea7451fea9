// Package recorder persists solver output.
//
// A Recorder receives one Begin, then a WriteRow per completed time level
// (level 0 included), then Finish with the run outcome. Sink adapts a
// Recorder to stepper.WithOnStep: levels are held in memory while the run
// progresses and written by Sink.Finish once it is over.
//
// Two backends are provided: SQLite (tables runs, axes and cells) and CSV
// (one line per time level).
package recorder
