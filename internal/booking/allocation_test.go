package booking

import "testing"

func TestValidateSeat(t *testing.T) {
    const cargoNum, placesInCargo = 10, 50

    cases := []struct {
        name       string
        cargo      int
        seat       int
        wantFields []string
    }{
        {"first seat of first cargo", 1, 1, nil},
        {"last seat of last cargo", 10, 50, nil},
        {"middle of the train", 5, 25, nil},
        {"cargo zero", 0, 10, []string{"cargo"}},
        {"cargo negative", -3, 10, []string{"cargo"}},
        {"cargo past the end", 11, 10, []string{"cargo"}},
        {"seat zero", 2, 0, []string{"seat"}},
        {"seat past the end", 2, 51, []string{"seat"}},
        {"both out of range", 0, 0, []string{"cargo", "seat"}},
        {"both far out of range", 99, 99, []string{"cargo", "seat"}},
    }

    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            errs := ValidateSeat(tc.cargo, tc.seat, cargoNum, placesInCargo)
            if len(errs) != len(tc.wantFields) {
                t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tc.wantFields))
            }
            for i, f := range tc.wantFields {
                if errs[i].Field != f {
                    t.Errorf("error %d: got field %q, want %q", i, errs[i].Field, f)
                }
                if errs[i].Message == "" {
                    t.Errorf("error %d: empty message", i)
                }
            }
        })
    }
}

func TestValidateSeatSingleSeatTrain(t *testing.T) {
    if errs := ValidateSeat(1, 1, 1, 1); len(errs) != 0 {
        t.Fatalf("seat (1,1) on a 1x1 train should be valid, got %v", errs)
    }
    if errs := ValidateSeat(2, 1, 1, 1); len(errs) != 1 || errs[0].Field != "cargo" {
        t.Fatalf("cargo 2 on a 1x1 train should fail on cargo, got %v", errs)
    }
}

func TestCapacity(t *testing.T) {
    if got := Capacity(10, 50); got != 500 {
        t.Fatalf("Capacity(10, 50) = %d, want 500", got)
    }
    if got := Capacity(1, 1); got != 1 {
        t.Fatalf("Capacity(1, 1) = %d, want 1", got)
    }
}

func TestAvailability(t *testing.T) {
    cases := []struct {
        name                          string
        cargoNum, placesInCargo, sold int
        want                          int
    }{
        {"nothing sold", 10, 50, 0, 500},
        {"three sold", 10, 50, 3, 497},
        {"sold out", 4, 20, 80, 0},
        {"single seat train booked", 1, 1, 1, 0},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := Availability(tc.cargoNum, tc.placesInCargo, tc.sold); got != tc.want {
                t.Fatalf("Availability(%d, %d, %d) = %d, want %d",
                    tc.cargoNum, tc.placesInCargo, tc.sold, got, tc.want)
            }
        })
    }
}

func TestFieldErrorMessageNamesRange(t *testing.T) {
    errs := ValidateSeat(7, 1, 4, 10)
    if len(errs) != 1 {
        t.Fatalf("expected one error, got %v", errs)
    }
    if want := "cargo number must be in available range: (1, 4)"; errs[0].Message != want {
        t.Fatalf("got message %q, want %q", errs[0].Message, want)
    }
    if errs[0].Error() != "cargo: "+errs[0].Message {
        t.Fatalf("Error() = %q", errs[0].Error())
    }
}
