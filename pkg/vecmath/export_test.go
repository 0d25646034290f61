package vecmath

var Spaced = spaced
