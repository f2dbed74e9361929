/*
Package arrfile implements the ARR typed-array file format used by a
legacy point-and-click game engine to persist heterogeneous lists of
scalar values.

Data Structure Documentation

File

A file is a count followed by a series of entries. All fixed-width
fields are little-endian, there is no footer, no padding and no
alignment beyond the natural 4-byte fields.

	File layout:
	+-----------------------+---------+---------+-------+---------+
	| entry count (4 bytes) | entry 1 | entry 2 |  ...  | entry n |
	+-----------------------+---------+---------+-------+---------+

Entry

An entry is a type tag followed by a tag-dependent payload. The tag
determines the payload width, which makes an unknown tag fatal to the
whole decode.

	Entry layout:
	+--------------------+--------------------------+
	| type tag (4 bytes) | payload (width, per tag) |
	+--------------------+--------------------------+

	Payloads:
	1 Integer   int32 value (4 bytes)
	2 String    uint32 byte length (4 bytes), then that many bytes
	            of Windows-1250 encoded text
	3 Boolean   uint32 value (4 bytes)
	4 Double    int32 fixed-point value (4 bytes),
	            real value = stored value / 10000.0

Backup

Backups written by editors wrap the file layout above in a small
container so that the payload can be compressed. The game engine never
reads backups.

	Backup layout:
	+-----------------+------------------------+---------------------------+
	| magic (8 bytes) | payload (see File)     | compression type (1 byte) |
	+-----------------+------------------------+---------------------------+

Policies

Two details of the format varied between observed revisions; this
package pins them down as follows:

Booleans are true iff the stored integer is nonzero. The same rule
applies when coercing Integer or Double entries to Boolean, so decode
and coercion can never disagree. Encode always writes exactly 0 or 1.

Doubles are stored as their value multiplied by 10,000 and rounded
half away from zero, giving 4 decimal digits of precision over roughly
±214,748.3647; out-of-range values clamp. The Double constructor
applies the same rounding, so a held value always survives an
encode/decode round-trip exactly.

String payload lengths count bytes of the Windows-1250 encoded form,
not characters. Runes without a Windows-1250 representation are
substituted on encode rather than rejected.
*/
package arrfile
