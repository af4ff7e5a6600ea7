package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/peer"
	"github.com/quarterback/oregontennis/survival"
	"github.com/quarterback/oregontennis/travel"
	"github.com/quarterback/oregontennis/turnaround"
	"github.com/quarterback/oregontennis/upset"
)

// Report is the output of one Run.
type Report struct {
	RunID       uuid.UUID `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Games     int                   `json:"games" yaml:"games"`
	Instances []bracket.InstanceKey `json:"instances" yaml:"instances"`

	Survival Survival           `json:"survival" yaml:"survival"`
	Peer     PeerCell           `json:"peer" yaml:"peer"`
	Travel   travel.Summary     `json:"travel" yaml:"travel"`
	Upset    Upset              `json:"upset" yaml:"upset"`
	Burden   *turnaround.Report `json:"turnaround,omitempty" yaml:"turnaround,omitempty"`
}

// Survival holds the rate table and the raw counts it came from.
type Survival struct {
	Basis   string                `json:"basis" yaml:"basis"`
	Rounds  []bracket.Round       `json:"rounds" yaml:"rounds"`
	Rates   survival.Table        `json:"rates" yaml:"rates"`
	Records []survival.SeedRecord `json:"records" yaml:"records"`
}

// PeerCell is the peer-group verdict, or the reason it is missing.
type PeerCell struct {
	Band   []int         `json:"band" yaml:"band"`
	Round  bracket.Round `json:"round" yaml:"round"`
	Result *peer.Result  `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the verdict was computed.
func (c PeerCell) OK() bool { return c.Result != nil }

// Upset holds the low-seed appearance table and the upset-win table, both
// in round order.
type Upset struct {
	LowBand []int        `json:"low_band" yaml:"low_band"`
	Cells   []upset.Cell `json:"appearances" yaml:"appearances"`
	Decided []upset.Cell `json:"decided" yaml:"decided"`
}
