package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	doc := Parse("name,unit,stock\nWidget,pcs,5\nGadget,box,0\n")

	assert.Equal(t, []string{"name", "unit", "stock"}, doc.Headers)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Widget", doc.Rows[0]["name"])
	assert.Equal(t, "5", doc.Rows[0]["stock"])
	assert.Equal(t, "Gadget", doc.Rows[1]["name"])
	assert.Equal(t, "0", doc.Rows[1]["stock"])
}

func TestParseQuotedCommas(t *testing.T) {
	doc := Parse("name,category\n\"Bolts, M6\",\"Nuts, and more\"")

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Bolts, M6", doc.Rows[0]["name"])
	assert.Equal(t, "Nuts, and more", doc.Rows[0]["category"])
}

func TestParseStripsQuotesAndWhitespace(t *testing.T) {
	doc := Parse(`"name" , "unit"` + "\n" + `  "Widget"  ,"pcs"`)

	assert.Equal(t, []string{"name", "unit"}, doc.Headers)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Widget", doc.Rows[0]["name"])
	assert.Equal(t, "pcs", doc.Rows[0]["unit"])
}

func TestParseShortRowPadsMissingColumns(t *testing.T) {
	doc := Parse("name,unit,category\nWidget,pcs")

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Widget", doc.Rows[0]["name"])
	assert.Equal(t, "pcs", doc.Rows[0]["unit"])
	assert.Equal(t, "", doc.Rows[0]["category"])
}

func TestParseQuotedEmptyField(t *testing.T) {
	doc := Parse("name,image\n\"Widget\",\"\"")

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "", doc.Rows[0]["image"])
}

func TestParseDiscardsBlankLines(t *testing.T) {
	doc := Parse("name\n\nWidget\n   \nGadget\n\n")

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Widget", doc.Rows[0]["name"])
	assert.Equal(t, "Gadget", doc.Rows[1]["name"])
}

func TestParseCRLF(t *testing.T) {
	doc := Parse("name,unit\r\nWidget,pcs\r\n")

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Widget", doc.Rows[0]["name"])
	assert.Equal(t, "pcs", doc.Rows[0]["unit"])
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("")
	assert.Empty(t, doc.Headers)
	assert.Empty(t, doc.Rows)
}

// Unquoted empty cells do not match the field grammar, so later cells shift
// left. This mirrors the dialect's documented limitation: empty fields must
// be written as "" to keep columns aligned.
func TestParseUnquotedEmptyFieldShiftsColumns(t *testing.T) {
	doc := Parse("a,b,c\nx,,z")

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "x", doc.Rows[0]["a"])
	assert.Equal(t, "z", doc.Rows[0]["b"])
	assert.Equal(t, "", doc.Rows[0]["c"])
}

func TestSerialize(t *testing.T) {
	out := Serialize([]Record{
		{Name: "Widget", Unit: "pcs", Category: "Tools", Brand: "Acme", Stock: 5, Status: "In Stock", Image: ""},
		{Name: "Gadget", Unit: "box", Category: "Misc", Brand: "Unknown", Stock: 0, Status: "Out of Stock", Image: "http://img/g.png"},
	})

	want := "name,unit,category,brand,stock,status,image\n" +
		`"Widget","pcs","Tools","Acme",5,"In Stock",""` + "\n" +
		`"Gadget","box","Misc","Unknown",0,"Out of Stock","http://img/g.png"`
	assert.Equal(t, want, out)
}

func TestSerializeEmpty(t *testing.T) {
	assert.Equal(t, "name,unit,category,brand,stock,status,image\n", Serialize(nil))
}

func TestSerializeParseRoundTrip(t *testing.T) {
	records := []Record{
		{Name: "Bolts, M6", Unit: "kg", Category: "Hardware", Brand: "Acme", Stock: 12, Status: "In Stock"},
		{Name: "Washer", Unit: "pcs", Category: "Hardware", Brand: "Unknown", Stock: 0, Status: "Out of Stock"},
	}
	doc := Parse(Serialize(records))

	require.Len(t, doc.Rows, len(records))
	for i, r := range records {
		assert.Equal(t, r.Name, doc.Rows[i]["name"])
		assert.Equal(t, r.Unit, doc.Rows[i]["unit"])
		assert.Equal(t, r.Status, doc.Rows[i]["status"])
	}
}
