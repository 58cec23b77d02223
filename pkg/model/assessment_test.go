package model_test

import (
	"encoding/json"
	"testing"

	"github.com/Ajay2840/talentflow-hiring-platform/pkg/model"
)

// showWhen arrives from authoring clients as either a bare string or a list.
func TestShowWhen_AcceptsBothForms(t *testing.T) {
	var c model.Condition
	if err := json.Unmarshal([]byte(`{"dependsOn":"q1","showWhen":"yes"}`), &c); err != nil {
		t.Fatalf("unmarshal scalar showWhen: %v", err)
	}
	if len(c.ShowWhen) != 1 || c.ShowWhen[0] != "yes" {
		t.Errorf("scalar showWhen = %v, want [yes]", c.ShowWhen)
	}

	if err := json.Unmarshal([]byte(`{"dependsOn":"q1","showWhen":["a","b"]}`), &c); err != nil {
		t.Fatalf("unmarshal list showWhen: %v", err)
	}
	if len(c.ShowWhen) != 2 || c.ShowWhen[0] != "a" || c.ShowWhen[1] != "b" {
		t.Errorf("list showWhen = %v, want [a b]", c.ShowWhen)
	}

	if err := json.Unmarshal([]byte(`{"dependsOn":"q1","showWhen":42}`), &c); err == nil {
		t.Error("numeric showWhen should fail to unmarshal")
	}
}
