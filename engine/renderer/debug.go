package renderer

import (
	"fmt"
	"strings"

	"github.com/emberengine/ember/engine/renderer/metadata"
)

// namedTarget is implemented by targets that carry a diagnostic name.
type namedTarget interface {
	Name() string
}

// DescribePass renders a one-line human-readable summary of a pass: its
// index, target binding, sample count and the per-attachment
// clear/store/resolve/mipmap state. Purely diagnostic; it never affects
// behaviour.
func DescribePass(device Device, index int, pass *RenderPass) string {
	var sb strings.Builder

	targetDesc := "<uninitialized>"
	switch pass.state {
	case targetDefaultFramebuffer:
		targetDesc = "default-framebuffer"
	case targetBound:
		targetDesc = "bound"
		if named, ok := pass.target.(namedTarget); ok {
			targetDesc = named.Name()
		}
	}

	if pass.state == targetBound && pass.target != nil {
		if pass.target.HasDepth() {
			targetDesc += "+depth"
		}
		if pass.target.HasStencil() {
			targetDesc += "+stencil"
		}
	}

	fmt.Fprintf(&sb, "pass %d '%s' target=%s samples=%d passCount=%d",
		index, pass.Name, targetDesc, pass.samples, device.RenderPassCount())
	if !pass.FullSizeClearRect {
		sb.WriteString(" partialClearRect")
	}

	for i, ops := range pass.colorArrayOps {
		fmt.Fprintf(&sb, " color%d=[%s]", i, describeColorOps(ops))
	}

	if ds := pass.depthStencilOps; ds != nil {
		var flags []string
		if ds.ClearDepth {
			flags = append(flags, fmt.Sprintf("clearDepth=%.3f", ds.ClearDepthValue))
		}
		if ds.StoreDepth {
			flags = append(flags, "storeDepth")
		}
		if ds.ClearStencil {
			flags = append(flags, fmt.Sprintf("clearStencil=%d", ds.ClearStencilValue))
		}
		if ds.StoreStencil {
			flags = append(flags, "storeStencil")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&sb, " depthStencil=[%s]", strings.Join(flags, " "))
		}
	}

	return sb.String()
}

func describeColorOps(ops *metadata.ColorAttachmentOps) string {
	var flags []string
	if ops.Clear {
		flags = append(flags, fmt.Sprintf("clear=(%.2f %.2f %.2f %.2f)",
			ops.ClearValue.X, ops.ClearValue.Y, ops.ClearValue.Z, ops.ClearValue.W))
	}
	if ops.Store {
		flags = append(flags, "store")
	}
	if ops.Resolve {
		flags = append(flags, "resolve")
	}
	if ops.Mipmaps {
		flags = append(flags, "mips")
	}
	return strings.Join(flags, " ")
}
