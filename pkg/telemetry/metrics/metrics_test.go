package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordValidation(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(DefaultConfig(), registry)

	c.RecordValidation("create", ResultAllowed)
	c.RecordValidation("create", ResultAllowed)
	c.RecordValidation("create", ResultViolation)
	c.RecordValidation("delete", ResultViolation)

	if got := testutil.ToFloat64(c.validations.WithLabelValues("create", ResultAllowed)); got != 2 {
		t.Errorf("validations{create,allowed} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.validations.WithLabelValues("create", ResultViolation)); got != 1 {
		t.Errorf("validations{create,violation} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.validations.WithLabelValues("delete", ResultViolation)); got != 1 {
		t.Errorf("validations{delete,violation} = %v, want 1", got)
	}
}

func TestCollector_RecordViolationAndLookup(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(DefaultConfig(), registry)

	c.RecordViolation("must be ephemeral")
	c.RecordLookup("exact")
	c.RecordLookup("default")
	c.RecordLookup("default")

	if got := testutil.ToFloat64(c.violations.WithLabelValues("must be ephemeral")); got != 1 {
		t.Errorf("violations{must be ephemeral} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.lookups.WithLabelValues("default")); got != 2 {
		t.Errorf("lookups{default} = %v, want 2", got)
	}
}

func TestCollector_SetSchemaCount(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(DefaultConfig(), registry)

	c.SetSchemaCount("exact", 3)
	c.SetSchemaCount("pattern", 7)
	c.SetSchemaCount("pattern", 5)

	if got := testutil.ToFloat64(c.schemas.WithLabelValues("exact")); got != 3 {
		t.Errorf("schemas{exact} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.schemas.WithLabelValues("pattern")); got != 5 {
		t.Errorf("schemas{pattern} = %v, want 5", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(&Config{Enabled: false}, registry)

	c.RecordValidation("create", ResultAllowed)
	c.RecordViolation("data is not valid")
	c.RecordLookup("pattern")

	if got := testutil.ToFloat64(c.validations.WithLabelValues("create", ResultAllowed)); got != 0 {
		t.Errorf("disabled collector recorded validations: %v", got)
	}
}
