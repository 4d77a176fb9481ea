package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Seed()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !reflect.DeepEqual(got, Seed()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, Seed())
	}
}

func TestReadCSVByColumnName(t *testing.T) {
	in := "Title,ID,genres,views,status\n" +
		"Tidebound,9,Fantasy| Sea ,1200,\n" +
		",10,,,\n"
	got, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1 (titleless row skipped)", len(got))
	}
	n := got[0]
	if n.ID != "9" || n.Views != 1200 || n.Status != "ongoing" || strings.Join(n.Genres, ",") != "Fantasy,Sea" {
		t.Fatalf("novel = %+v", n)
	}
}

func TestReadCSVBadNumber(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("id,title,views\n1,A,lots\n"))
	if err == nil || !strings.Contains(err.Error(), "views for 1") {
		t.Fatalf("err = %v", err)
	}
}

func TestReadCSVStatus(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("id,title,status\n1,A,Completed\n2,B,hiatus\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got[0].Status != "completed" || got[1].Status != "hiatus" {
		t.Fatalf("statuses = %q, %q", got[0].Status, got[1].Status)
	}

	_, err = ReadCSV(strings.NewReader("id,title,status\n7,A,abandoned\n"))
	if err == nil || !strings.Contains(err.Error(), "status for 7") {
		t.Fatalf("err = %v, want unknown status", err)
	}
}
