package formats

// Package formats implements the encoding selection logic: filtering and
// search over probed formats, the default display ordering, and the
// deterministic "best quality" heuristic. All functions are pure over
// model.Format slices; the caller owns selection state.
