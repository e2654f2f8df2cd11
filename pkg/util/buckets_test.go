package util_test

import (
	"testing"

	"github.com/emufs/eefile/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestDecimalExponentialBuckets(t *testing.T) {
	// Unlike with prometheus.ExponentialBuckets, floating point
	// imprecision should not accumulate. Every power of ten should
	// be represented accurately.
	require.Equal(t, util.DecimalExponentialBuckets(-3, 6, 0), []float64{
		1e-03, 1e-02, 1e-01, 1e+00, 1e+01, 1e+02, 1e+03,
	})
	require.Equal(t, util.DecimalExponentialBuckets(-3, 6, 2), []float64{
		1e-03, 2.1544e-03, 4.6415e-03, 1e-02, 2.1544e-02, 4.6415e-02,
		1e-01, 2.1544e-01, 4.6415e-01, 1e+00, 2.1544e+00, 4.6415e+00,
		1e+01, 2.1544e+01, 4.6415e+01, 1e+02, 2.1544e+02, 4.6415e+02,
		1e+03,
	})
}
