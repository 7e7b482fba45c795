// Package assembly implements the two sparse-to-dense and dense-to-sparse
// accumulation steps the numeric driver drives per front (spec §4.4):
// "focus", which gathers a supercolumn's matrix and descendant-contribution
// entries into a dense front, and "align-add", which scatters a finished
// descendant's contribution block into an ancestor's front through
// dense row/column index maps.
//
// Both map_rows and map_cols (spec §3, §5) are caller-owned dense []int
// workspaces of length n, reused across the whole numeric traversal and
// reset to NoMap (-1) by the caller between fronts; the focus and
// align-add functions never allocate them (NewMap is the caller's
// allocator), matching the shared-workspace ownership spec §5 assigns
// to the numeric context.
package assembly
