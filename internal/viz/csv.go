package viz

import (
	"encoding/csv"
	"io"
	"strconv"

	"go.trai.ch/zerr"
)

// WritePointsCSV writes points as a two-column CSV with the given
// header. Values use the shortest exact decimal representation, so
// integral task IDs come out without a fraction.
func WritePointsCSV(w io.Writer, header [2]string, points []Point) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{header[0], header[1]}); err != nil {
		return zerr.Wrap(err, "failed to write csv header")
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p[0], 'f', -1, 64),
			strconv.FormatFloat(p[1], 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return zerr.Wrap(err, "failed to write csv record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return zerr.Wrap(err, "failed to flush csv")
	}
	return nil
}
