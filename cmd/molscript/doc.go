// 16 Oct 2026

/*
Molscript reads files of scripting literals, one per line, and writes
out what it makes of them. Files may be gzipped.

Usage:

	molscript unescape [--log where] [--out file] file
	molscript unicode  [--log where] [--out file] file
	molscript strings  [--log where] [--out file] file

unescape reads each line as a point {x y z}, a four component point, an
atom set ({0:3 5}), a bond set [{1 2}] or a matrix [[a b c][d e f][g h i]]
and prints it with its type. Anything it does not recognise is printed
as a quoted string.

unicode replaces \uXXXX escapes by the characters they stand for.

strings reads string arrays like ["a", "b\"c"] and writes them back,
leaving numbers unquoted.

Lines which could not be read are counted. If --log is given, each is
reported there, as well as the totals. --log stdout sends this to
standard output.
*/
package main
