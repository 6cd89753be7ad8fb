package algebraic

// Isolating exposes isolating to algebraic_test.
var Isolating = isolating
