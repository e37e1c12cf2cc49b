package project

import (
	"testing"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	uid := uuid.New().String()

	tests := []struct {
		name        string
		projectName string
		uid         string
		want        Project
		wantErr     bool
	}{
		{
			name:        "name and uid",
			projectName: "logging",
			uid:         uid,
			want:        Project{Name: "logging", UID: uid},
		},
		{
			name:        "name only",
			projectName: "logging",
			want:        Project{Name: "logging"},
		},
		{
			name:    "empty name",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.projectName, tt.uid)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("New() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEquality(t *testing.T) {
	a := Project{Name: "app", UID: "abc123"}
	b := Project{Name: "app", UID: "abc123"}
	if a != b {
		t.Error("projects with equal name and uid must be equal")
	}

	// Absent UID is a distinct identity from any present UID.
	c := Project{Name: "app"}
	if a == c {
		t.Error("uid-less project must not equal project with uid")
	}
}

func TestSentinels(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty must report IsEmpty")
	}
	if AllAlias.Name != ".all" || AllAlias.UID != "" {
		t.Errorf("AllAlias = %v, want {.all}", AllAlias)
	}
	if EmptyProject.Name != ".empty-project" || EmptyProject.UID != "" {
		t.Errorf("EmptyProject = %v, want {.empty-project}", EmptyProject)
	}
	if (Project{}) != Empty {
		t.Error("zero value must equal Empty")
	}
}

func TestString(t *testing.T) {
	if got := (Project{Name: "app", UID: "abc"}).String(); got != "app.abc" {
		t.Errorf("String() = %q, want %q", got, "app.abc")
	}
	if got := (Project{Name: "app"}).String(); got != "app" {
		t.Errorf("String() = %q, want %q", got, "app")
	}
}
