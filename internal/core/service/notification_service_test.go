package service

import (
	"context"
	"testing"

	"github.com/blueward/access-system/internal/infrastructure/memstore"
)

func TestNotification_ListForUser(t *testing.T) {
	fx := memstore.Seed()
	svc := NewNotificationService(fx.Notifications, discardLogger)

	got, err := svc.ListForUser(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications for john, got %d", len(got))
	}

	got, err = svc.ListForUser(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list for dave, got %d", len(got))
	}
}

func TestNotification_ListUnreadForUser(t *testing.T) {
	fx := memstore.Seed()
	svc := NewNotificationService(fx.Notifications, discardLogger)

	unread, err := svc.ListUnreadForUser(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 1 || unread[0].ID != 4 {
		t.Fatalf("expected only notification 4 unread for maria, got %+v", unread)
	}

	// John's fixture notifications are already read.
	unread, err = svc.ListUnreadForUser(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 0 {
		t.Errorf("expected no unread for john, got %d", len(unread))
	}
}

func TestNotification_MarkRead_Idempotent(t *testing.T) {
	fx := memstore.Seed()
	svc := NewNotificationService(fx.Notifications, discardLogger)

	// Marking twice in succession succeeds both times.
	if ok := svc.MarkRead(context.Background(), 4); !ok {
		t.Fatal("first MarkRead must succeed")
	}
	if ok := svc.MarkRead(context.Background(), 4); !ok {
		t.Fatal("second MarkRead must succeed")
	}

	n, err := fx.Notifications.FindByID(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !n.Read {
		t.Error("notification must be read after acknowledgement")
	}

	if ok := svc.MarkRead(context.Background(), 99); ok {
		t.Error("unknown id must return false")
	}
}
