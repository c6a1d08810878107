package engine

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/status"
)

// Metric names published by a Compositor
const (
	MetricFrames       = "engine.frames"
	MetricCells        = "engine.cells"
	MetricCursorMoves  = "engine.cursor_moves"
	MetricStyleChanges = "engine.style_changes"
	MetricDropped      = "engine.dropped_events"
	MetricTickErrors   = "engine.tick_errors"
	MetricTickMillis   = "engine.tick_ms"
	MetricSize         = "engine.size"
)

// metrics caches the registry entries written every tick
type metrics struct {
	reg          *status.Registry
	frames       *atomic.Int64
	cells        *atomic.Int64
	cursorMoves  *atomic.Int64
	styleChanges *atomic.Int64
	dropped      *atomic.Int64
	tickErrors   *atomic.Int64
	tickMillis   *status.Float
	size         *status.String
}

func newMetrics(reg *status.Registry) metrics {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return metrics{
		reg:          reg,
		frames:       reg.Ints.Get(MetricFrames),
		cells:        reg.Ints.Get(MetricCells),
		cursorMoves:  reg.Ints.Get(MetricCursorMoves),
		styleChanges: reg.Ints.Get(MetricStyleChanges),
		dropped:      reg.Ints.Get(MetricDropped),
		tickErrors:   reg.Ints.Get(MetricTickErrors),
		tickMillis:   reg.Floats.Get(MetricTickMillis),
		size:         reg.Strings.Get(MetricSize),
	}
}

// presented records one successful frame; counters are cumulative
func (m *metrics) presented(st frame.Stats, took time.Duration) {
	m.frames.Add(1)
	m.cells.Add(int64(st.Cells))
	m.cursorMoves.Add(int64(st.CursorMoves))
	m.styleChanges.Add(int64(st.StyleChanges))
	m.tickMillis.Store(float64(took) / float64(time.Millisecond))
}

func (m *metrics) resized(w, h int) {
	m.size.Store(strconv.Itoa(w) + "x" + strconv.Itoa(h))
}
