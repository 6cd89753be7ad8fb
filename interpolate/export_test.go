package interpolate

// CommonDenominator exposes commonDenominator to interpolate_test.
var CommonDenominator = commonDenominator
