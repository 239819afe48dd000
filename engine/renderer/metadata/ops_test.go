package metadata

import (
	"testing"

	"github.com/emberengine/ember/engine/math"
)

func TestColorAttachmentOpsDefaults(t *testing.T) {
	ops := NewColorAttachmentOps()

	if ops.ClearValue != math.ColorOpaqueBlack() {
		t.Errorf("ClearValue = %v, want opaque black", ops.ClearValue)
	}
	if ops.Clear {
		t.Error("Clear must default to false")
	}
	if ops.Store {
		t.Error("Store must default to false")
	}
	if !ops.Resolve {
		t.Error("Resolve must default to true")
	}
	if ops.Mipmaps {
		t.Error("Mipmaps must default to false")
	}
}

func TestDepthStencilAttachmentOpsDefaults(t *testing.T) {
	ops := NewDepthStencilAttachmentOps()

	if ops.ClearDepthValue != 1 {
		t.Errorf("ClearDepthValue = %v, want 1", ops.ClearDepthValue)
	}
	if ops.ClearStencilValue != 0 {
		t.Errorf("ClearStencilValue = %v, want 0", ops.ClearStencilValue)
	}
	if ops.ClearDepth || ops.ClearStencil || ops.StoreDepth || ops.StoreStencil {
		t.Error("clear/store flags must default to false")
	}
}
