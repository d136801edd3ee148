package dimen

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PX {
		t.Errorf("(1) expected d to be 12px, is %v", d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %v", d)
	}
	//
	d, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	} else if d != 20 {
		t.Errorf("(3) expected percentage to be 20, is %v", d)
	}
	//
	d, _, err = ParseDimen("1in")
	if err != nil || d != 96 {
		t.Errorf("(4) expected 1in to be 96px, is %v (err=%v)", d, err)
	}
	//
	d, _, err = ParseDimen("-1.5px")
	if err != nil || d != -1.5 {
		t.Errorf("(5) expected -1.5px, is %v (err=%v)", d, err)
	}
}

func TestParseDimenIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.core")
	defer teardown()
	//
	for _, s := range []string{"", "px", "12", "12qq", "auto", "1.2.3px"} {
		if _, _, err := ParseDimen(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.core")
	defer teardown()
	//
	if math.Abs((72 * PT).Px()-96) > 1e-9 {
		t.Errorf("expected 72pt to equal 1in, is %v", 72*PT)
	}
	if math.Abs((254 * MM).Px()-960) > 1e-9 {
		t.Errorf("expected 254mm to equal 10in, is %v", 254*MM)
	}
	if Sum(1, 2, 3) != 6 || Max(1, 2) != 2 || Min(1, 2) != 1 {
		t.Errorf("arithmetic helpers broken")
	}
	if (12 * PX).String() != "12px" {
		t.Errorf("expected 12px, got %s", (12 * PX).String())
	}
}
