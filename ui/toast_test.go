package ui

import (
	"testing"
	"time"

	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
)

func TestToast_LimitAndExpiry(t *testing.T) {
	toast := newToastModel(time.Second)

	if cmd := toast.show(model.Notification{Title: "first"}); cmd == nil {
		t.Fatal("expected an expiry command")
	}
	firstID := toast.seq
	toast.show(model.Notification{Title: "second", Variant: constant.VariantDestructive})

	if toast.current.Title != "second" {
		t.Fatalf("a new notification must replace the current one, got %q", toast.current.Title)
	}

	toast.expire(firstID)
	if toast.current == nil {
		t.Fatal("an older timer must not expire a newer notification")
	}

	toast.expire(toast.seq)
	if toast.current != nil {
		t.Error("expected the notification to expire")
	}
}

func TestToast_ZeroTTLPersists(t *testing.T) {
	toast := newToastModel(0)
	if cmd := toast.show(model.Notification{Title: "sticky"}); cmd != nil {
		t.Error("zero ttl must not schedule expiry")
	}
	if !toast.dismiss() {
		t.Error("expected dismiss to remove the notification")
	}
	if toast.dismiss() {
		t.Error("dismiss with nothing shown must report false")
	}
}

func TestModel_EscDismissesToast(t *testing.T) {
	m := newTestModel(t, testDeps(t))
	press(m, keyEnter)
	if m.toast.current == nil {
		t.Fatal("expected validation toast")
	}

	press(m, keyEsc)
	if m.toast.current != nil {
		t.Error("esc must dismiss the notification")
	}

	m.toast.show(model.Notification{Title: "again"})
	m.Update(toastExpiredMsg{id: m.toast.seq})
	if m.toast.current != nil {
		t.Error("expiry message must clear the notification")
	}
}
