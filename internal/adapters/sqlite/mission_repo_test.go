package sqlite

import (
	"context"
	"testing"
)

func TestMissionRepository_CreateAndGet(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))
	ctx := context.Background()

	mission := testMissionRecord("PRJ001", "AgriCo")
	if err := repo.Create(ctx, mission); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "PRJ001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Client != "AgriCo" {
		t.Errorf("Client = %q, want %q", got.Client, "AgriCo")
	}
	if got.RequiredSkill != "Mapping" || got.RequiredCert != "DGCA" {
		t.Errorf("requirements = %q/%q", got.RequiredSkill, got.RequiredCert)
	}
	if got.Priority != "High" {
		t.Errorf("Priority = %q, want %q", got.Priority, "High")
	}
}

func TestMissionRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))

	if _, err := repo.GetByID(context.Background(), "PRJ999"); err == nil {
		t.Error("expected error for missing mission")
	}
}

func TestMissionRepository_List_InsertionOrder(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))
	ctx := context.Background()

	for _, m := range []struct{ id, client string }{
		{"PRJ002", "MetroRail"},
		{"PRJ001", "AgriCo"},
	} {
		if err := repo.Create(ctx, testMissionRecord(m.id, m.client)); err != nil {
			t.Fatalf("Create %s: %v", m.id, err)
		}
	}

	missions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(missions) != 2 || missions[0].ID != "PRJ002" || missions[1].ID != "PRJ001" {
		t.Errorf("unexpected order: got %+v", missions)
	}
}

func TestMissionRepository_Update(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))
	ctx := context.Background()

	mission := testMissionRecord("PRJ001", "AgriCo")
	if err := repo.Create(ctx, mission); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mission.Priority = "Urgent"
	mission.EndDate = "2024-03-20"
	if err := repo.Update(ctx, mission); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := repo.GetByID(ctx, "PRJ001")
	if got.Priority != "Urgent" || got.EndDate != "2024-03-20" {
		t.Errorf("got %+v after update", got)
	}
}

func TestMissionRepository_Update_NotFound(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))

	if err := repo.Update(context.Background(), testMissionRecord("PRJ999", "Ghost")); err == nil {
		t.Error("expected error for missing mission")
	}
}

func TestMissionRepository_GetNextID(t *testing.T) {
	repo := NewMissionRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID: %v", err)
	}
	if id != "PRJ001" {
		t.Errorf("first ID = %q, want %q", id, "PRJ001")
	}

	if err := repo.Create(ctx, testMissionRecord("PRJ012", "Seq")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID: %v", err)
	}
	if id != "PRJ013" {
		t.Errorf("next ID = %q, want %q", id, "PRJ013")
	}
}
