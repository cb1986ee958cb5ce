package services

import (
	"testing"
	"time"

	"kharcha/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

		expense, err := svc.CreateExpense(user.ID, "Groceries", 42.50, "Food", date)
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, expense.UserID)
		}
		if expense.Amount != 42.50 {
			t.Errorf("expected amount 42.50, got %v", expense.Amount)
		}
		if !expense.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, expense.Date)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		date := time.Now()

		_, err := svc.CreateExpense(user.ID, "", 10, "Food", date)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateExpense(user.ID, "Lunch", 0, "Food", date)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateExpense(user.ID, "Lunch", 10, "", date)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateExpense(user.ID, "Lunch", 10, "Food", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateExpense("", "Lunch", 10, "Food", date)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("open_category_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)

		// Category is an open string; anything non-empty is accepted
		expense, err := svc.CreateExpense(user.ID, "Vet", 120, "Llama maintenance", time.Now())
		testutil.AssertNoError(t, err)
		if expense.Category != "Llama maintenance" {
			t.Errorf("expected category to be stored as given, got %s", expense.Category)
		}
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, alice.ID, 100, "Food", time.Now())
		testutil.CreateTestExpense(t, db, alice.ID, 50, "Transport", time.Now())
		testutil.CreateTestExpense(t, db, bob.ID, 999, "Shopping", time.Now())

		expenses, err := svc.GetUserExpenses(alice.ID)
		testutil.AssertNoError(t, err)

		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		for _, e := range expenses {
			if e.UserID != alice.ID {
				t.Errorf("expected only alice's expenses, got one owned by %s", e.UserID)
			}
		}
	})

	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		old := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestExpense(t, db, user.ID, 10, "Food", old)
		testutil.CreateTestExpense(t, db, user.ID, 20, "Food", recent)

		expenses, err := svc.GetUserExpenses(user.ID)
		testutil.AssertNoError(t, err)

		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		if !expenses[0].Date.After(expenses[1].Date) {
			t.Error("expected expenses ordered newest first")
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		expenses, err := svc.GetUserExpenses(user.ID)
		testutil.AssertNoError(t, err)

		if len(expenses) != 0 {
			t.Errorf("expected no expenses, got %d", len(expenses))
		}
	})
}
