package values

import (
	"testing"
	"time"

	"github.com/radtek/insertq/internal/testutil"
)

// --- Literals ---

func TestRenderNil(t *testing.T) {
	t.Parallel()
	expr, param := Render(Insert, "deleted_at", nil)

	testutil.AssertEqual(t, expr, "NULL")
	if param != nil {
		t.Errorf("expected no parameter for nil, got %+v", param)
	}
}

func TestRenderTypedNilPointer(t *testing.T) {
	t.Parallel()
	var s *string
	expr, param := Render(Insert, "note", s)

	testutil.AssertEqual(t, expr, "NULL")
	if param != nil {
		t.Errorf("expected no parameter for nil pointer, got %+v", param)
	}
}

func TestRenderBool(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value bool
		want  string
	}{
		{true, "1"},
		{false, "0"},
	}

	for _, tt := range tests {
		// Both contexts must go through the same conversion.
		insertExpr, insertParam := Render(Insert, "active", tt.value)
		updateExpr, updateParam := Render(Update, "active", tt.value)

		testutil.AssertEqual(t, insertExpr, tt.want)
		testutil.AssertEqual(t, updateExpr, tt.want)
		testutil.AssertEqual(t, insertExpr, updateExpr)
		if insertParam != nil || updateParam != nil {
			t.Errorf("expected no parameter for bool %v", tt.value)
		}
	}
}

func TestRenderNumerics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 5, "'5'"},
		{"negative int", -3, "'-3'"},
		{"int8", int8(8), "'8'"},
		{"int16", int16(16), "'16'"},
		{"int32", int32(32), "'32'"},
		{"int64", int64(64), "'64'"},
		{"uint", uint(7), "'7'"},
		{"uint8", uint8(255), "'255'"},
		{"uint16", uint16(65535), "'65535'"},
		{"uint32", uint32(42), "'42'"},
		{"uint64", uint64(99), "'99'"},
		{"float32", float32(2.5), "'2.5'"},
		{"float64", 5.5, "'5.5'"},
		{"float64 integral", 10.0, "'10'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, param := Render(Insert, "n", tt.value)

			testutil.AssertEqual(t, expr, tt.want)
			if param != nil {
				t.Errorf("expected no parameter for numeric %v, got %+v", tt.value, param)
			}
		})
	}
}

// --- Bound parameters ---

func TestRenderStringBindsParameter(t *testing.T) {
	t.Parallel()
	expr, param := Render(Insert, "userName", "alice")

	testutil.AssertEqual(t, expr, "@user_Name")
	if param == nil {
		t.Fatal("expected a parameter for string value")
	}
	testutil.AssertEqual(t, param.Name, "@user_Name")
	if param.Value != "alice" {
		t.Errorf("expected original value %q, got %v", "alice", param.Value)
	}
}

func TestRenderUpdateContextPrefix(t *testing.T) {
	t.Parallel()
	expr, param := Render(Update, "userName", "alice")

	testutil.AssertEqual(t, expr, "@update_user_Name")
	if param == nil {
		t.Fatal("expected a parameter for string value")
	}
	testutil.AssertEqual(t, param.Name, "@update_user_Name")
}

func TestRenderTimeBindsParameter(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expr, param := Render(Insert, "created", ts)

	testutil.AssertEqual(t, expr, "@created")
	if param == nil {
		t.Fatal("expected a parameter for time value")
	}
	if !param.Value.(time.Time).Equal(ts) {
		t.Errorf("expected original time %v, got %v", ts, param.Value)
	}
}

func TestRenderBytesBindParameter(t *testing.T) {
	t.Parallel()
	expr, param := Render(Insert, "payload", []byte{0x1, 0x2})

	testutil.AssertEqual(t, expr, "@payload")
	if param == nil {
		t.Fatal("expected a parameter for byte slice")
	}
}

func TestRenderNilBytesIsNull(t *testing.T) {
	t.Parallel()
	expr, param := Render(Insert, "payload", []byte(nil))

	testutil.AssertEqual(t, expr, "NULL")
	if param != nil {
		t.Errorf("expected no parameter for nil byte slice, got %+v", param)
	}
}
