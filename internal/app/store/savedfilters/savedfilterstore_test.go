package savedfilterstore_test

import (
	"testing"

	savedfilterstore "github.com/breezehq/breeze-console/internal/app/store/savedfilters"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/breezehq/breeze-console/internal/testutil"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := savedfilterstore.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	store := savedfilterstore.New(db)

	for _, f := range []models.SavedFilter{
		{Name: "Trial orgs", Entity: models.FilterEntityOrganizations, Status: "trial"},
		{Name: "Acme search", Entity: models.FilterEntityOrganizations, Query: "acme"},
		{Name: "Midwest sites", Entity: models.FilterEntitySites, Query: "columbia"},
	} {
		if _, err := store.Create(ctx, f); err != nil {
			t.Fatalf("Create(%q): %v", f.Name, err)
		}
	}

	all, err := store.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 filters, got %d", len(all))
	}
	// Sorted by folded name.
	if all[0].Name != "Acme search" {
		t.Errorf("first filter = %q, want %q", all[0].Name, "Acme search")
	}

	orgsOnly, err := store.List(ctx, models.FilterEntityOrganizations, "")
	if err != nil {
		t.Fatalf("List(organizations): %v", err)
	}
	if len(orgsOnly) != 2 {
		t.Errorf("expected 2 organization filters, got %d", len(orgsOnly))
	}

	// Case-insensitive prefix search.
	byPrefix, err := store.List(ctx, "", "TRIAL")
	if err != nil {
		t.Fatalf("List(prefix): %v", err)
	}
	if len(byPrefix) != 1 || byPrefix[0].Name != "Trial orgs" {
		t.Errorf("prefix search got %+v, want Trial orgs", byPrefix)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := savedfilterstore.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	store := savedfilterstore.New(db)

	f := models.SavedFilter{Name: "Mine", Entity: models.FilterEntityOrganizations}
	if _, err := store.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Same name, different case, same entity: rejected.
	if _, err := store.Create(ctx, models.SavedFilter{Name: "MINE", Entity: models.FilterEntityOrganizations}); err != savedfilterstore.ErrDuplicateFilter {
		t.Errorf("expected ErrDuplicateFilter, got %v", err)
	}

	// Same name on the other entity: allowed.
	if _, err := store.Create(ctx, models.SavedFilter{Name: "Mine", Entity: models.FilterEntitySites}); err != nil {
		t.Errorf("same name on different entity should succeed, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := savedfilterstore.New(db)

	created, err := store.Create(ctx, models.SavedFilter{Name: "Gone soon", Entity: models.FilterEntitySites})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	// Second delete is a no-op, not an error.
	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted on repeat, got %d", n)
	}
}
