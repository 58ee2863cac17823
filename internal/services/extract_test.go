package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cfai-go/internal/domain"
)

func TestExtractFencedBlock(t *testing.T) {
	text := "Sure, here is what I suggest:\n```json\n" +
		`{"actions":[{"type":"dns_create","description":"add www","params":{"type":"A","name":"www","content":"1.2.3.4"},"risk":"low"}],"explanation":"adds the web host"}` +
		"\n```\nLet me know if that works."

	plan := Extract(text)

	want := domain.ActionPlan{
		Actions: []domain.Action{
			{
				Kind:        domain.KindDNSRecordCreate,
				RawType:     "dns_create",
				Description: "add www",
				Params:      map[string]any{"type": "A", "name": "www", "content": "1.2.3.4"},
				Risk:        domain.RiskLow,
			},
		},
		Explanation: "adds the web host",
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBareJSON(t *testing.T) {
	text := `{"actions":[{"type":"cache_purge","description":"flush everything","params":{"type":"purge_all"},"risk":"medium"}]}`

	plan := Extract(text)

	if len(plan.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(plan.Actions))
	}
	if plan.Actions[0].Kind != domain.KindCachePurge {
		t.Errorf("kind = %v", plan.Actions[0].Kind)
	}
	if plan.Actions[0].Risk != domain.RiskMedium {
		t.Errorf("risk = %v", plan.Actions[0].Risk)
	}
}

func TestExtractNoPayload(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain prose", text: "Your DNS setup looks fine, nothing to change."},
		{name: "empty string", text: ""},
		{name: "non-object json", text: `["not","a","plan"]`},
		{name: "truncated json", text: `{"actions":[{"type":"dns_create"`},
		{name: "fenced non-json", text: "```json\nnot json at all\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Extract(tt.text)
			if !plan.Empty() || plan.Explanation != "" {
				t.Errorf("Extract(%q) = %+v, want empty plan", tt.text, plan)
			}
		})
	}
}

func TestExtractMalformedFenceFallsBackToWholeText(t *testing.T) {
	// The fenced content is broken; the fallback parses the whole original
	// text, which also fails here, yielding an empty plan.
	text := "intro\n```json\n{\"actions\": [}\n```\ntrailer"
	if plan := Extract(text); !plan.Empty() {
		t.Errorf("expected empty plan, got %+v", plan)
	}
}

func TestExtractFirstFencedBlockWins(t *testing.T) {
	text := "```json\n{\"actions\":[{\"type\":\"dns_delete\",\"description\":\"drop old\",\"params\":{\"record_id\":\"abc\"},\"risk\":\"high\"}]}\n```\n" +
		"```json\n{\"actions\":[{\"type\":\"cache_purge\",\"description\":\"other\",\"params\":{},\"risk\":\"low\"}]}\n```"

	plan := Extract(text)
	if len(plan.Actions) != 1 || plan.Actions[0].Kind != domain.KindDNSRecordDelete {
		t.Errorf("expected only the first fenced block to be parsed, got %+v", plan)
	}
}

func TestExtractKeepsUnknownKinds(t *testing.T) {
	text := "```json\n" +
		`{"actions":[{"type":"worker_deploy","description":"deploy worker","params":{},"risk":"low"}]}` +
		"\n```"

	plan := Extract(text)
	if len(plan.Actions) != 1 {
		t.Fatalf("expected unknown kind to be kept, got %d actions", len(plan.Actions))
	}
	if plan.Actions[0].Kind != domain.KindUnsupported {
		t.Errorf("kind = %v, want unsupported", plan.Actions[0].Kind)
	}
	if plan.Actions[0].RawType != "worker_deploy" {
		t.Errorf("raw type = %q", plan.Actions[0].RawType)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "```json\n" +
		`{"actions":[{"type":"ssl_set","description":"enforce https","params":{"setting":"always_https"},"risk":"medium"}],"explanation":"tighten tls"}` +
		"\n```"

	first := Extract(text)
	second := Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() not deterministic (-first +second):\n%s", diff)
	}
}

func TestExtractPreservesOrder(t *testing.T) {
	text := "```json\n" +
		`{"actions":[` +
		`{"type":"dns_create","description":"one","params":{},"risk":"low"},` +
		`{"type":"cache_purge","description":"two","params":{},"risk":"low"},` +
		`{"type":"dns_delete","description":"three","params":{},"risk":"high"}` +
		`]}` + "\n```"

	plan := Extract(text)
	var got []string
	for _, a := range plan.Actions {
		got = append(got, a.Description)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
