package service

import "testing"

func TestReferenceListPublishedAndOrder(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewReferenceService(gdb)

	first, err := svc.Create(ReferenceInput{CompanyName: "Acme Otel", Order: 1, Published: true})
	if err != nil {
		t.Fatalf("failed to create reference: %v", err)
	}
	second, err := svc.Create(ReferenceInput{CompanyName: "Beta Sitesi", Order: 0, Published: true})
	if err != nil {
		t.Fatalf("failed to create reference: %v", err)
	}
	if _, err := svc.Create(ReferenceInput{CompanyName: "Hidden", Published: false}); err != nil {
		t.Fatalf("failed to create reference: %v", err)
	}

	refs, err := svc.List(true)
	if err != nil {
		t.Fatalf("failed to list references: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 published references, got %d", len(refs))
	}
	if refs[0].ID != second.ID || refs[1].ID != first.ID {
		t.Fatalf("expected display order by sort_order, got %v then %v", refs[0].ID, refs[1].ID)
	}

	if err := svc.UpdateOrder([]OrderUpdate{{ID: first.ID, Order: 0}, {ID: second.ID, Order: 1}}); err != nil {
		t.Fatalf("failed to reorder: %v", err)
	}
	refs, err = svc.List(true)
	if err != nil {
		t.Fatalf("failed to list references: %v", err)
	}
	if refs[0].ID != first.ID {
		t.Fatalf("reorder not applied, first is %v", refs[0].ID)
	}
}

func TestReferencePartialUpdate(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewReferenceService(gdb)

	ref, err := svc.Create(ReferenceInput{CompanyName: "Acme", Website: "https://acme.example", Published: true})
	if err != nil {
		t.Fatalf("failed to create reference: %v", err)
	}

	published := false
	updated, err := svc.Update(ref.ID, ReferenceUpdateInput{Published: &published})
	if err != nil {
		t.Fatalf("failed to update reference: %v", err)
	}
	if updated.Published {
		t.Fatal("expected reference unpublished")
	}
	if updated.Website != "https://acme.example" {
		t.Fatalf("untouched field changed: %q", updated.Website)
	}

	if _, err := svc.Update(9999, ReferenceUpdateInput{}); err != ErrReferenceNotFound {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}
