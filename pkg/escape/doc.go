/*
Package escape turns values into the literal syntax of the viewer's
command language and reads some of those literals back.

Writing, with E, handles anything a Value can hold:

	null                      null
	numbers, booleans         1  2.5  1.0E10  true
	strings                   "a\tbé"
	lists                     [1, "two", 3.0]
	maps                      { "a":1,"b":"x" }
	bit-sets                  ({0:3 5 7 8})
	points                    {1.0 2.0 3.0}  {1.0 2.0 3.0 4.0}
	matrices                  [
	                            [1.0,	0.0,	0.0]
	                            [0.0,	1.0,	0.0]
	                            [0.0,	0.0,	1.0] ]

MatrixToScript squeezes a matrix onto one line, [[1.0 0.0 0.0][0.0 1.0 0.0][0.0 0.0 1.0]],
which is the form UnescapeMatrix and UABsM read back.

Reading is not a parser for the language. UP reads a point, UnescapeMatrix
a 3x3 or 4x4 matrix and UABsM decides between those and a bit-set by
looking at the first characters. UnescapeStringArray reads a list of
quoted strings. Whatever cannot be read comes back as the original
string. Nothing here returns an error.

ToReadable is for people, not for reading back. It labels every value
with its type.
*/
package escape
