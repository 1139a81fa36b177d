// Package grid lays a flat content-atom stream onto a paginated grid of
// fixed-width columns and fixed-height rows, following the conventions
// of classical East-Asian vertical book typesetting: columns fill top to
// bottom, pages fill right to left, periodically recurring columns are
// reserved for decorative margins, and interlinear annotations run as
// two narrow sub-columns inside the main column.
//
// The engine is a single-pass cursor automaton. [Layout] consumes the
// stream one atom at a time and produces a [Result]: a position map from
// atom ID to grid coordinates plus the total page count. Logical column
// indices ascend left to right; mapping them to physical right-to-left
// positions, and drawing anything, is the renderer's concern.
//
// A layout run is a pure function of its inputs. The cursor, occupancy
// map, and position map are owned by one invocation; nothing is shared
// across runs.
package grid
