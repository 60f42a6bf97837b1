package shape

import "strings"

// PreludeNamespace is the namespace of the built-in shapes.
const PreludeNamespace = "smithy.api"

// Prelude shape ids. Boxed numeric and boolean shapes are nullable; the
// Primitive variants are not.
const (
	String           ID = "smithy.api#String"
	Blob             ID = "smithy.api#Blob"
	BigInteger       ID = "smithy.api#BigInteger"
	BigDecimal       ID = "smithy.api#BigDecimal"
	Timestamp        ID = "smithy.api#Timestamp"
	Document         ID = "smithy.api#Document"
	Boolean          ID = "smithy.api#Boolean"
	PrimitiveBoolean ID = "smithy.api#PrimitiveBoolean"
	Byte             ID = "smithy.api#Byte"
	PrimitiveByte    ID = "smithy.api#PrimitiveByte"
	Short            ID = "smithy.api#Short"
	PrimitiveShort   ID = "smithy.api#PrimitiveShort"
	Integer          ID = "smithy.api#Integer"
	PrimitiveInteger ID = "smithy.api#PrimitiveInteger"
	Long             ID = "smithy.api#Long"
	PrimitiveLong    ID = "smithy.api#PrimitiveLong"
	Float            ID = "smithy.api#Float"
	PrimitiveFloat   ID = "smithy.api#PrimitiveFloat"
	Double           ID = "smithy.api#Double"
	PrimitiveDouble  ID = "smithy.api#PrimitiveDouble"
	Unit             ID = "smithy.api#Unit"
)

var prelude = []*Shape{
	{ID: String, Kind: KindString},
	{ID: Blob, Kind: KindBlob},
	{ID: BigInteger, Kind: KindBigInteger},
	{ID: BigDecimal, Kind: KindBigDecimal},
	{ID: Timestamp, Kind: KindTimestamp},
	{ID: Document, Kind: KindDocument},
	{ID: Boolean, Kind: KindBoolean, Traits: Traits{Boxed: true}},
	{ID: PrimitiveBoolean, Kind: KindBoolean},
	{ID: Byte, Kind: KindByte, Traits: Traits{Boxed: true}},
	{ID: PrimitiveByte, Kind: KindByte},
	{ID: Short, Kind: KindShort, Traits: Traits{Boxed: true}},
	{ID: PrimitiveShort, Kind: KindShort},
	{ID: Integer, Kind: KindInteger, Traits: Traits{Boxed: true}},
	{ID: PrimitiveInteger, Kind: KindInteger},
	{ID: Long, Kind: KindLong, Traits: Traits{Boxed: true}},
	{ID: PrimitiveLong, Kind: KindLong},
	{ID: Float, Kind: KindFloat, Traits: Traits{Boxed: true}},
	{ID: PrimitiveFloat, Kind: KindFloat},
	{ID: Double, Kind: KindDouble, Traits: Traits{Boxed: true}},
	{ID: PrimitiveDouble, Kind: KindDouble},
	{ID: Unit, Kind: KindUnit},
}

// IsPrelude reports whether id belongs to the prelude namespace.
func IsPrelude(id ID) bool {
	return strings.HasPrefix(string(id), PreludeNamespace+"#")
}
