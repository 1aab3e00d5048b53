package ledger

import "testing"

func TestEnsureCategoryIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	s := NewCategories(db)

	first, err := s.Ensure(user.ID, "Food", KindExpense)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	second, err := s.Ensure(user.ID, "Food", KindExpense)
	if err != nil {
		t.Fatalf("Ensure() again error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("Ensure() created duplicate: ids %d and %d", first.ID, second.ID)
	}

	// same name under a different kind is a distinct category
	income, err := s.Ensure(user.ID, "Food", KindIncome)
	if err != nil {
		t.Fatalf("Ensure() income error = %v", err)
	}
	if income.ID == first.ID {
		t.Error("Ensure() reused category across kinds")
	}
}

func TestListCategoriesByKind(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	s := NewCategories(db)

	s.Ensure(user.ID, "Salary", KindIncome)
	s.Ensure(user.ID, "Food", KindExpense)
	s.Ensure(user.ID, "Rent", KindExpense)

	all, err := s.List(user.ID, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(all) = %d categories, want 3", len(all))
	}

	expenses, _ := s.List(user.ID, KindExpense)
	if len(expenses) != 2 {
		t.Errorf("List(expense) = %d categories, want 2", len(expenses))
	}
	for _, c := range expenses {
		if c.Kind != KindExpense {
			t.Errorf("List(expense) returned kind %q", c.Kind)
		}
	}
}

func TestDeleteCategoryNoop(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	s := NewCategories(db)

	// deleting an absent category is not an error
	if err := s.Delete(user.ID, "Ghost", KindExpense); err != nil {
		t.Fatalf("Delete(absent) error = %v", err)
	}

	s.Ensure(user.ID, "Food", KindExpense)
	if err := s.Delete(user.ID, "Food", KindExpense); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	cats, _ := s.List(user.ID, "")
	if len(cats) != 0 {
		t.Errorf("categories after delete = %d, want 0", len(cats))
	}
}
