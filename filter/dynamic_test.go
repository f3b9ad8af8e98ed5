package filter_test

import (
	"sync"
	"testing"

	"github.com/logkit/dynfilter/filter"
	"github.com/logkit/dynfilter/level"
)

// The threshold registry is process-wide, so every test uses its own filter
// names.

func TestRejectsBelowThreshold(t *testing.T) {
	f := filter.NewDynamicLevelFilter("rejects-below-threshold", level.Debug)

	for _, testcase := range []struct {
		severity level.Level
		want     filter.Response
	}{
		{level.Trace, filter.Reject},
		{level.Debug, filter.Neutral},
		{level.Info, filter.Neutral},
		{level.Warn, filter.Neutral},
		{level.Error, filter.Neutral},
	} {
		have := f.Filter(&filter.Record{Level: testcase.severity})
		if want := testcase.want; want != have {
			t.Errorf("severity %v: want %v, have %v", testcase.severity, want, have)
		}
	}
}

func TestMonotoneDecisionRule(t *testing.T) {
	severities := []level.Level{level.Error, level.Warn, level.Info, level.Debug, level.Trace}
	for _, threshold := range []level.Level{level.Off, level.Error, level.Warn, level.Info, level.Debug, level.Trace} {
		f := filter.NewDynamicLevelFilter("monotone-"+threshold.String(), threshold)
		for _, severity := range severities {
			want := filter.Neutral
			if severity > threshold {
				want = filter.Reject
			}
			if have := f.Filter(&filter.Record{Level: severity}); want != have {
				t.Errorf("threshold %v, severity %v: want %v, have %v", threshold, severity, want, have)
			}
		}
	}
}

func TestRegistrationIsIdempotent(t *testing.T) {
	const name = "idempotent-registration"

	first := filter.NewDynamicLevelFilter(name, level.Debug)
	second := filter.NewDynamicLevelFilter(name, level.Error)

	// The second registration must not overwrite the threshold, so Info
	// still passes on both handles.
	r := &filter.Record{Level: level.Info}
	if want, have := filter.Neutral, first.Filter(r); want != have {
		t.Errorf("first handle: want %v, have %v", want, have)
	}
	if want, have := filter.Neutral, second.Filter(r); want != have {
		t.Errorf("second handle: want %v, have %v", want, have)
	}
}

func TestSetLevelAffectsAllHandles(t *testing.T) {
	const name = "set-affects-all-handles"

	first := filter.NewDynamicLevelFilter(name, level.Error)
	second := filter.NewDynamicLevelFilter(name, level.Error)

	r := &filter.Record{Level: level.Info}
	if want, have := filter.Reject, first.Filter(r); want != have {
		t.Fatalf("before SetLevel: want %v, have %v", want, have)
	}

	filter.SetLevel(name, level.Info)

	if want, have := filter.Neutral, first.Filter(r); want != have {
		t.Errorf("first handle after SetLevel: want %v, have %v", want, have)
	}
	if want, have := filter.Neutral, second.Filter(r); want != have {
		t.Errorf("second handle after SetLevel: want %v, have %v", want, have)
	}
}

func TestSetLevelUnknownNameIsNoop(t *testing.T) {
	const name = "set-unknown-name"

	// Setting a level before the filter exists must not register anything:
	// the later registration supplies the starting threshold.
	filter.SetLevel(name, level.Trace)

	f := filter.NewDynamicLevelFilter(name, level.Error)
	if want, have := filter.Reject, f.Filter(&filter.Record{Level: level.Info}); want != have {
		t.Errorf("want %v, have %v", want, have)
	}
}

func TestRaiseAndLowerAtRuntime(t *testing.T) {
	const name = "raise-and-lower"

	f := filter.NewDynamicLevelFilter(name, level.Error)

	info := &filter.Record{Level: level.Info}
	err := &filter.Record{Level: level.Error}
	if want, have := filter.Reject, f.Filter(info); want != have {
		t.Errorf("info before SetLevel: want %v, have %v", want, have)
	}
	if want, have := filter.Neutral, f.Filter(err); want != have {
		t.Errorf("error before SetLevel: want %v, have %v", want, have)
	}

	filter.SetLevel(name, level.Info)

	if want, have := filter.Neutral, f.Filter(info); want != have {
		t.Errorf("info after SetLevel: want %v, have %v", want, have)
	}
	if want, have := filter.Neutral, f.Filter(err); want != have {
		t.Errorf("error after SetLevel: want %v, have %v", want, have)
	}
}

// Designed to be run with the race detector.
func TestConcurrentSetAndFilter(t *testing.T) {
	const name = "concurrent-set-and-filter"

	f := filter.NewDynamicLevelFilter(name, level.Info)
	levels := []level.Level{level.Error, level.Warn, level.Info, level.Debug, level.Trace}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				filter.SetLevel(name, levels[(i+j)%len(levels)])
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			r := &filter.Record{Level: levels[i%len(levels)]}
			for j := 0; j < 100; j++ {
				if have := f.Filter(r); have != filter.Reject && have != filter.Neutral {
					t.Errorf("want Reject or Neutral, have %v", have)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
