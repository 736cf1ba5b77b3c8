package metrics

import (
	"testing"
	"time"
)

func TestUsageRecord(t *testing.T) {
	u := New()
	u.Record("OpenAI", "hi", 10*time.Millisecond)
	u.Record("OpenAI", "Error: boom", 30*time.Millisecond)
	u.Record("Anthropic", "ok", time.Millisecond)

	s := u.Snapshot()
	if len(s) != 2 || s[0].Provider != "Anthropic" {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	o := s[1]
	if o.Requests != 2 || o.ErrorReplies != 1 || o.AvgLatencyMs != 20 {
		t.Fatalf("unexpected openai stats %+v", o)
	}
}
