package scriptregistry

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/run/internal/adapters/examplescripts"
	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
	"github.com/AntonioJCosta/run/internal/core/testutil"
)

// memFiles backs a MockFileStore with an in-memory map.
func memFiles(files map[string]string) *testutil.MockFileStore {
	errNotFound := errors.New("not found")
	m := &testutil.MockFileStore{}
	m.ReadFunc = func(name string) (string, error) {
		content, ok := files[name]
		if !ok {
			return "", errNotFound
		}
		return content, nil
	}
	m.WriteFunc = func(name, content string) error {
		files[name] = content
		return nil
	}
	m.CreateFunc = func(name, content string) error {
		if _, ok := files[name]; ok {
			return errors.New(name + " already exists")
		}
		files[name] = content
		return nil
	}
	m.ExistsFunc = func(name string) bool {
		_, ok := files[name]
		return ok
	}
	return m
}

func TestNewService(t *testing.T) {
	t.Run("should return a service with defaults", func(t *testing.T) {
		svc := NewService(&testutil.MockFileStore{}, &testutil.MockExampleProvider{}, "", nil)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
		if got := svc.(*service).runFile; got != "run.yaml" {
			t.Errorf("runFile = %q, want run.yaml", got)
		}
	})

	t.Run("should panic if files is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil files")
			}
		}()
		_ = NewService(nil, &testutil.MockExampleProvider{}, "", nil)
	})

	t.Run("should panic if examples is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil examples")
			}
		}()
		_ = NewService(&testutil.MockFileStore{}, nil, "", nil)
	})
}

func TestService_Load(t *testing.T) {
	canonical := "# Compiles the project.\ncompile: tsc\n\n# Prints a greeting message.\ngreet: echo hey!\n"

	t.Run("canonical file is not rewritten", func(t *testing.T) {
		files := memFiles(map[string]string{"run.yaml": canonical})
		svc := NewService(files, &testutil.MockExampleProvider{}, "run.yaml", nil)

		reg, err := svc.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if reg.Len() != 2 {
			t.Errorf("Len() = %d, want 2", reg.Len())
		}
		if len(files.WriteCalls) != 0 {
			t.Errorf("Load() wrote %v, want no writes", files.WriteCalls)
		}
	})

	t.Run("drifted file is rewritten in canonical form", func(t *testing.T) {
		drifted := "# Prints a greeting message.\ngreet:   echo hey!\n# Compiles the project.\ncompile: tsc"
		store := map[string]string{"run.yaml": drifted}
		files := memFiles(store)
		svc := NewService(files, &testutil.MockExampleProvider{}, "run.yaml", nil)

		if _, err := svc.Load(); err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if store["run.yaml"] != canonical {
			t.Errorf("run.yaml = %q, want %q", store["run.yaml"], canonical)
		}
	})

	t.Run("rewrite failure is swallowed", func(t *testing.T) {
		files := memFiles(map[string]string{"run.yaml": "greet: echo hi"})
		files.WriteFunc = func(name, content string) error {
			return errors.New("read-only file system")
		}
		svc := NewService(files, &testutil.MockExampleProvider{}, "run.yaml", nil)

		reg, err := svc.Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if reg.Len() != 1 {
			t.Errorf("Len() = %d, want 1", reg.Len())
		}
	})

	t.Run("read error is passed through", func(t *testing.T) {
		files := memFiles(map[string]string{})
		svc := NewService(files, &testutil.MockExampleProvider{}, "run.yaml", nil)

		if _, err := svc.Load(); err == nil {
			t.Error("Load() error = nil, want read error")
		}
	})

	t.Run("parse error aborts without writing", func(t *testing.T) {
		files := memFiles(map[string]string{"scripts.yaml": "# a\n# b\nx: y"})
		svc := NewService(files, &testutil.MockExampleProvider{}, "scripts.yaml", nil)

		_, err := svc.Load()
		var parseErr *registry.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Load() error = %v, want *registry.ParseError", err)
		}
		if parseErr.Source != "scripts.yaml" || parseErr.Line != 2 {
			t.Errorf("ParseError = %s line %d, want scripts.yaml line 2", parseErr.Source, parseErr.Line)
		}
		if len(files.WriteCalls) != 0 {
			t.Errorf("Load() wrote %v after a parse error", files.WriteCalls)
		}
	})
}

func TestService_Init(t *testing.T) {
	packageJSON := `{"name": "x", "scripts": {"compile": "tsc", "bundle": "rollup -c"}}`
	denoJSON := `{"tasks": {"start": "deno run dev.ts"}}`

	example := func() (*registry.Registry, error) {
		reg := registry.New()
		_ = reg.Insert("greet", script.New("echo hey!", "Prints a greeting message."))
		return reg, nil
	}

	tests := []struct {
		name        string
		files       map[string]string
		force       bool
		wantSource  string
		wantEntries int
		wantContent string
		wantErr     bool
	}{
		{
			name:        "package.json wins",
			files:       map[string]string{"package.json": packageJSON, "deno.json": denoJSON},
			wantSource:  "package.json",
			wantEntries: 2,
			wantContent: "# No comment specified.\nbundle: rollup -c\n\n# No comment specified.\ncompile: tsc\n",
		},
		{
			name:        "deno.json when no package.json",
			files:       map[string]string{"deno.json": denoJSON},
			wantSource:  "deno.json",
			wantEntries: 1,
			wantContent: "# No comment specified.\nstart: deno run dev.ts\n",
		},
		{
			name:        "example when no json source",
			files:       map[string]string{},
			wantSource:  examplescripts.Source,
			wantEntries: 1,
			wantContent: "# Prints a greeting message.\ngreet: echo hey!\n",
		},
		{
			name:    "existing run file is kept without force",
			files:   map[string]string{"run.yaml": "keep: me\n"},
			wantErr: true,
		},
		{
			name:        "force overwrites existing run file",
			files:       map[string]string{"run.yaml": "keep: me\n"},
			force:       true,
			wantSource:  examplescripts.Source,
			wantEntries: 1,
			wantContent: "# Prints a greeting message.\ngreet: echo hey!\n",
		},
		{
			name:    "invalid package.json aborts",
			files:   map[string]string{"package.json": `{"scripts": {"a b": "x"}}`},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := memFiles(tt.files)
			svc := NewService(files, &testutil.MockExampleProvider{GetExampleRegistryFunc: example}, "run.yaml", nil)

			got, err := svc.Init(tt.force)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Source != tt.wantSource || got.Entries != tt.wantEntries || got.File != "run.yaml" {
				t.Errorf("Init() = %+v, want source %s with %d entries", got, tt.wantSource, tt.wantEntries)
			}
			if tt.files["run.yaml"] != tt.wantContent {
				t.Errorf("run.yaml = %q, want %q", tt.files["run.yaml"], tt.wantContent)
			}
		})
	}

	t.Run("content the run file cannot hold is not written", func(t *testing.T) {
		cases := []struct {
			name    string
			pkg     string
			wantErr error
		}{
			{name: "name starting with #", pkg: `{"scripts": {"#lint": "eslint ."}}`, wantErr: registry.ErrUnexpectedComment},
			{name: "command with raw newline", pkg: "{\"scripts\": {\"two\": \"echo a\necho b\"}}", wantErr: registry.ErrMissingSeparator},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				files := map[string]string{"package.json": c.pkg}
				svc := NewService(memFiles(files), &testutil.MockExampleProvider{GetExampleRegistryFunc: example}, "run.yaml", nil)

				_, err := svc.Init(true)
				if !errors.Is(err, c.wantErr) {
					t.Errorf("Init() error = %v, want %v", err, c.wantErr)
				}
				if _, ok := files["run.yaml"]; ok {
					t.Errorf("run.yaml was written: %q", files["run.yaml"])
				}
			})
		}
	})

	t.Run("example provider error is wrapped", func(t *testing.T) {
		providerErr := errors.New("broken embed")
		svc := NewService(memFiles(map[string]string{}), &testutil.MockExampleProvider{
			GetExampleRegistryFunc: func() (*registry.Registry, error) { return nil, providerErr },
		}, "run.yaml", nil)

		_, err := svc.Init(false)
		if !errors.Is(err, providerErr) {
			t.Errorf("Init() error = %v, want wrapping %v", err, providerErr)
		}
	})
}
