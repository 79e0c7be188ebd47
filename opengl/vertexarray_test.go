package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/bungine/graphics"
)

func TestAttribSlots(t *testing.T) {
	layout := graphics.NewBufferLayout(
		graphics.BufferElement{Name: "aPosition", Type: graphics.Float3},
		graphics.BufferElement{Name: "aModel", Type: graphics.Mat4},
		graphics.BufferElement{Name: "aID", Type: graphics.Int},
	)
	want := []attribSlot{
		{index: 2, size: 3, xtype: gl.FLOAT, offset: 0},
		{index: 3, size: 4, xtype: gl.FLOAT, offset: 12},
		{index: 4, size: 4, xtype: gl.FLOAT, offset: 28},
		{index: 5, size: 4, xtype: gl.FLOAT, offset: 44},
		{index: 6, size: 4, xtype: gl.FLOAT, offset: 60},
		{index: 7, size: 1, xtype: gl.INT, integer: true, offset: 76},
	}

	got := attribSlots(layout, 2)
	if len(got) != len(want) {
		t.Fatalf("attribSlots returned %d slots, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAttribSlotsMat3(t *testing.T) {
	layout := graphics.NewBufferLayout(graphics.BufferElement{Name: "aNormal", Type: graphics.Mat3, Normalized: true})
	got := attribSlots(layout, 0)
	if len(got) != 3 {
		t.Fatalf("Mat3 took %d locations, want 3", len(got))
	}
	for col, a := range got {
		if a.index != uint32(col) || a.size != 3 || a.offset != 12*col || !a.normalized || a.integer {
			t.Errorf("column %d = %+v", col, a)
		}
	}
}
