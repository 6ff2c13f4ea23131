package entities

import "testing"

func TestBudgetTotal(t *testing.T) {
	t.Run("empty items", func(t *testing.T) {
		if got := BudgetTotal(nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
		if got := BudgetTotal([]BudgetItem{}); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("sums quantity times unit price", func(t *testing.T) {
		items := []BudgetItem{
			{Description: "Instalación", Quantity: 2, UnitPrice: 1000},
			{Description: "Materiales", Quantity: 1, UnitPrice: 500},
		}
		if got := BudgetTotal(items); got != 2500 {
			t.Fatalf("expected 2500, got %v", got)
		}
	})

	t.Run("zero quantity contributes nothing", func(t *testing.T) {
		items := []BudgetItem{
			{Description: "Visita", Quantity: 0, UnitPrice: 999},
			{Description: "Mano de obra", Quantity: 3, UnitPrice: 100},
		}
		if got := BudgetTotal(items); got != 300 {
			t.Fatalf("expected 300, got %v", got)
		}
	})
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if AppointmentStatus("done").Valid() {
		t.Fatal("expected 'done' to be invalid")
	}
}

func TestTraceSourceValid(t *testing.T) {
	for _, s := range []TraceSource{TraceSourceMeeting, TraceSourceEmail, TraceSourceCall} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if TraceSource("fax").Valid() {
		t.Fatal("expected 'fax' to be invalid")
	}
}
