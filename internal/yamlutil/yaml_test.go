package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/notesforge/go-note2doc/internal/yamlutil"
)

type testTheme struct {
	Name     string  `yaml:"name"`
	BodySize int     `yaml:"bodySize"`
	Spacing  float64 `yaml:"spacing"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: tech\nbodySize: 10\nspacing: 1.5"),
			dest: &testTheme{},
			check: func(t *testing.T, v any) {
				th := v.(*testTheme)
				if th.Name != "tech" {
					t.Errorf("Name = %q, want %q", th.Name, "tech")
				}
				if th.BodySize != 10 {
					t.Errorf("BodySize = %d, want 10", th.BodySize)
				}
				if th.Spacing != 1.5 {
					t.Errorf("Spacing = %v, want 1.5", th.Spacing)
				}
			},
		},
		{
			name: "unknown fields tolerated",
			data: []byte("name: tech\nfutureField: value"),
			dest: &testTheme{},
			check: func(t *testing.T, v any) {
				if th := v.(*testTheme); th.Name != "tech" {
					t.Errorf("Name = %q, want %q", th.Name, "tech")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testTheme{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: tech"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testTheme{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var th testTheme
		if err := yamlutil.UnmarshalStrict([]byte("name: minimal\nbodySize: 12"), &th); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if th.Name != "minimal" || th.BodySize != 12 {
			t.Errorf("decoded = %+v", th)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		var th testTheme
		err := yamlutil.UnmarshalStrict([]byte("name: minimal\ntypoField: 1"), &th)
		if err == nil {
			t.Fatal("expected error for unknown field, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want yamlutil prefix", err)
		}
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		var th testTheme
		if err := yamlutil.UnmarshalStrict(nil, &th); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("errors.Is(err, ErrNilData) = false, got: %v", err)
		}
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	original := testTheme{Name: "roundtrip", BodySize: 11, Spacing: 1.4}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded testTheme
	if err := yamlutil.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

// Modifies the global MaxInputSize, so no t.Parallel here.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100

	t.Run("input at limit succeeds", func(t *testing.T) {
		data := make([]byte, 100)
		copy(data, []byte("name: x"))
		var th testTheme
		if err := yamlutil.Unmarshal(data, &th); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails", func(t *testing.T) {
		data := make([]byte, 101)
		copy(data, []byte("name: x"))
		var th testTheme
		if err := yamlutil.Unmarshal(data, &th); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})

	t.Run("UnmarshalStrict also enforces limit", func(t *testing.T) {
		data := make([]byte, 101)
		copy(data, []byte("name: x"))
		var th testTheme
		if err := yamlutil.UnmarshalStrict(data, &th); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
