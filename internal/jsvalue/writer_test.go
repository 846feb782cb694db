package jsvalue

import "testing"

func TestWriteCompact(t *testing.T) {
	object := NewObject().
		Put("name", String("id")).
		Put("count", Number(3)).
		Put("ratio", Number(0.5)).
		Put("active", Bool(true)).
		Put("fn", Raw("svc.read")).
		Put("page", Undefined).
		Put("list", Array{String("a"), String("b")})

	got := Writer{}.Write(object)
	want := `{name:"id",count:3,ratio:0.5,active:true,fn:svc.read,page:undefined,list:["a","b"]}`
	if got != want {
		t.Fatalf("compact output mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestWritePretty(t *testing.T) {
	object := NewObject().
		Put("name", String("id")).
		Put("nested", NewObject().Put("min", Number(2))).
		Put("list", Array{String("a")})

	got := Writer{Indent: "  "}.Write(object)
	want := "{\n" +
		"  name: \"id\",\n" +
		"  nested: {\n" +
		"    min: 2\n" +
		"  },\n" +
		"  list: [\n" +
		"    \"a\"\n" +
		"  ]\n" +
		"}"
	if got != want {
		t.Fatalf("pretty output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWriteQuotesNonIdentifierKeys(t *testing.T) {
	object := NewObject().
		Put("valid_key$", String("x")).
		Put("not-valid", String("y")).
		Put("1leading", String("z"))

	got := Writer{}.Write(object)
	want := `{valid_key$:"x","not-valid":"y","1leading":"z"}`
	if got != want {
		t.Fatalf("key quoting mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestWriteSingleQuotes(t *testing.T) {
	got := Writer{Quote: '\''}.Write(String(`it's "fine"`))
	want := `'it\'s "fine"'`
	if got != want {
		t.Fatalf("quote mismatch: got %s want %s", got, want)
	}
}

func TestWriteEscapesControlCharacters(t *testing.T) {
	got := Writer{}.Write(String("a\nb\tc\\d"))
	want := `"a\nb\tc\\d"`
	if got != want {
		t.Fatalf("escape mismatch: got %s want %s", got, want)
	}
}

func TestWriteEmptyCollections(t *testing.T) {
	if got := (Writer{Indent: "  "}).Write(NewObject()); got != "{}" {
		t.Fatalf("empty object: got %s", got)
	}
	if got := (Writer{Indent: "  "}).Write(Array{}); got != "[]" {
		t.Fatalf("empty array: got %s", got)
	}
}

func TestPutStringSkipsEmpty(t *testing.T) {
	object := NewObject().PutString("a", "").PutString("b", "x")
	if object.Len() != 1 {
		t.Fatalf("expected one member, got %d", object.Len())
	}
	if got := (Writer{}).Write(object); got != `{b:"x"}` {
		t.Fatalf("unexpected output %s", got)
	}
}
