package engine

import "github.com/rs/zerolog"

// Stats collects node counts and the number of cutoffs per mechanism for one
// BestMove call.
type Stats struct {
	Nodes            uint64
	QNodes           uint64
	TTCutoffs        uint64
	NullMoveTries    uint64
	NullMoveCutoffs  uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("qnodes", s.QNodes).
		Uint64("tt_cutoffs", s.TTCutoffs).
		Uint64("null_tries", s.NullMoveTries).
		Uint64("null_cutoffs", s.NullMoveCutoffs).
		Uint64("beta_cutoffs", s.BetaCutoffs).
		Uint64("q_standpat_cutoffs", s.QStandPatCutoffs).
		Uint64("q_beta_cutoffs", s.QBetaCutoffs)
}

func (s TTStats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("probes", s.Probes).
		Uint64("hits", s.Hits).
		Uint64("stores", s.Stores).
		Uint64("overwrites", s.Overwrites)
}
