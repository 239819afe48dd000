package metadata

import (
	"github.com/emberengine/ember/engine/math"
)

/**
 * @brief Per-colour-attachment operations for a render pass. One instance
 * exists for each colour attachment of the bound target, index-aligned with
 * the target's colour buffer list.
 */
type ColorAttachmentOps struct {
	/** @brief The colour the attachment is cleared to when Clear is set. */
	ClearValue math.Vec4
	/** @brief Clear the attachment at the start of the pass instead of preserving its contents. */
	Clear bool
	/** @brief Persist the rendered surface after the pass. When false the implementation may discard it. */
	Store bool
	/** @brief Resolve a multisampled surface into a single-sampled destination after the pass. */
	Resolve bool
	/** @brief Regenerate mip levels for the attachment after the pass. */
	Mipmaps bool
}

/**
 * @brief NewColorAttachmentOps returns the default colour operations:
 * opaque black clear value, no clear, no store, resolve enabled, no mipmaps.
 */
func NewColorAttachmentOps() *ColorAttachmentOps {
	return &ColorAttachmentOps{
		ClearValue: math.ColorOpaqueBlack(),
		Clear:      false,
		Store:      false,
		Resolve:    true,
		Mipmaps:    false,
	}
}

/**
 * @brief Depth/stencil operations for a render pass. Depth and stencil are
 * handled independently field by field.
 */
type DepthStencilAttachmentOps struct {
	/** @brief The value the depth attachment is cleared to when ClearDepth is set. */
	ClearDepthValue float32
	/** @brief The value the stencil attachment is cleared to when ClearStencil is set. */
	ClearStencilValue uint32
	/** @brief Clear the depth attachment at the start of the pass. */
	ClearDepth bool
	/** @brief Clear the stencil attachment at the start of the pass. */
	ClearStencil bool
	/** @brief Persist the depth attachment after the pass. */
	StoreDepth bool
	/** @brief Persist the stencil attachment after the pass. */
	StoreStencil bool
}

/**
 * @brief NewDepthStencilAttachmentOps returns the default depth/stencil
 * operations: clear depth value 1, clear stencil value 0, nothing cleared
 * or stored.
 */
func NewDepthStencilAttachmentOps() *DepthStencilAttachmentOps {
	return &DepthStencilAttachmentOps{
		ClearDepthValue:   1,
		ClearStencilValue: 0,
	}
}
