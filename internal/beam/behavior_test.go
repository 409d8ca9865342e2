package beam_test

import (
	"iter"

	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/phasespace"
	"github.com/beamphys/beamgen/internal/physics"
	"github.com/beamphys/beamgen/internal/sampler"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func makeTable(n int) *phasespace.Table {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i), 0.1, 0.2, 0.3, 0.4}
	}
	t, err := phasespace.FromRows(rows)
	Expect(err).NotTo(HaveOccurred())
	return t
}

func collect(seq iter.Seq[*phasespace.Table]) []*phasespace.Table {
	var out []*phasespace.Table
	for chunk := range seq {
		out = append(out, chunk)
	}
	return out
}

var _ = Describe("Beam", func() {
	Describe("construction", func() {
		It("starts empty", func() {
			b := beam.New()
			Expect(b.Empty()).To(BeTrue())
			Expect(b.Particles()).To(BeZero())
			Expect(b.Dims()).To(BeZero())
			Expect(b.Species()).To(Equal(physics.Proton))
			Expect(b.SliceCount()).To(Equal(1))
		})

		It("adopts an existing table", func() {
			b, err := beam.NewFromTable(makeTable(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Particles()).To(Equal(7))
			Expect(b.Dims()).To(Equal(5))
		})

		It("rejects an empty table", func() {
			empty := makeTable(5).Slice(0, 0)
			_, err := beam.NewFromTable(empty)
			Expect(err).To(MatchError(beam.ErrEmptyDistribution))
		})

		It("rejects a nil table", func() {
			Expect(beam.New().FromTable(nil)).To(MatchError(beam.ErrEmptyDistribution))
		})

		It("keeps options through construction", func() {
			k, err := physics.FromMomentum(physics.Electron, 100)
			Expect(err).NotTo(HaveOccurred())

			b := beam.New(
				beam.WithSpecies(physics.Electron),
				beam.WithKinematics(k),
				beam.WithSlices(3),
			)
			Expect(b.Species().Name).To(Equal("electron"))
			Expect(b.SliceCount()).To(Equal(3))
			brho, err := b.Brho()
			Expect(err).NotTo(HaveOccurred())
			Expect(brho).To(BeNumerically(">", 0))
		})

		It("fails rigidity queries without kinematics", func() {
			_, err := beam.New().Brho()
			Expect(err).To(MatchError(beam.ErrNoKinematics))
		})

		It("replaces the distribution on regeneration", func() {
			b := beam.New(beam.WithSource(sampler.New(11)))
			Expect(b.FromSigmaMatrix(50, beam.SigmaSpec{S11: 1, S22: 1, S33: 1, S44: 1})).To(Succeed())
			Expect(b.Particles()).To(Equal(50))

			Expect(b.FromTwiss(20, beam.TwissParams{"EMITX": 1, "EMITY": 1})).To(Succeed())
			Expect(b.Particles()).To(Equal(20))
		})

		It("keeps the previous distribution when a mutator fails", func() {
			b, err := beam.NewFromTable(makeTable(9))
			Expect(err).NotTo(HaveOccurred())

			Expect(b.FromTwiss(10, beam.TwissParams{"EMITX": 1})).To(MatchError(beam.ErrMissingEmittance))
			Expect(b.Particles()).To(Equal(9))
		})
	})

	Describe("slicing", func() {
		It("splits an even division into equal chunks", func() {
			b, err := beam.NewFromTable(makeTable(100), beam.WithSlices(4))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.Slices()
			Expect(err).NotTo(HaveOccurred())

			chunks := collect(seq)
			Expect(chunks).To(HaveLen(4))
			for _, c := range chunks {
				Expect(c.NumRows()).To(Equal(25))
			}
		})

		It("yields a remainder chunk when the division is uneven", func() {
			b, err := beam.NewFromTable(makeTable(10))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(3)
			Expect(err).NotTo(HaveOccurred())

			var sizes []int
			for chunk := range seq {
				sizes = append(sizes, chunk.NumRows())
			}
			Expect(sizes).To(Equal([]int{3, 3, 3, 1}))
		})

		It("covers every particle exactly once", func() {
			b, err := beam.NewFromTable(makeTable(10))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(3)
			Expect(err).NotTo(HaveOccurred())

			var seen []float64
			for chunk := range seq {
				for i := 0; i < chunk.NumRows(); i++ {
					seen = append(seen, chunk.At(i, 0))
				}
			}
			Expect(seen).To(HaveLen(10))
			for i, v := range seen {
				Expect(v).To(Equal(float64(i)))
			}
		})

		It("relabels chunks to the canonical columns", func() {
			tb, err := phasespace.New([]string{"a", "b", "c", "d", "e"}, makeTable(6).Rows())
			Expect(err).NotTo(HaveOccurred())
			b, err := beam.NewFromTable(tb)
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(2)
			Expect(err).NotTo(HaveOccurred())
			for chunk := range seq {
				Expect(chunk.Labels()).To(Equal([]string{"Y", "T", "Z", "P", "D"}))
			}
			Expect(tb.Labels()[0]).To(Equal("a"))
		})

		It("shares row storage with the distribution", func() {
			b, err := beam.NewFromTable(makeTable(8))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(2)
			Expect(err).NotTo(HaveOccurred())
			chunks := collect(seq)

			chunks[1].Row(0)[0] = -42
			Expect(b.Distribution().At(4, 0)).To(Equal(-42.0))
		})

		It("restarts cleanly", func() {
			b, err := beam.NewFromTable(makeTable(10))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(3)
			Expect(err).NotTo(HaveOccurred())

			Expect(collect(seq)).To(HaveLen(4))
			Expect(collect(seq)).To(HaveLen(4))
		})

		It("reads the distribution as of the call", func() {
			b, err := beam.NewFromTable(makeTable(50))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(1)
			Expect(err).NotTo(HaveOccurred())

			Expect(b.FromTable(makeTable(20))).To(Succeed())
			chunks := collect(seq)
			Expect(chunks).To(HaveLen(1))
			Expect(chunks[0].NumRows()).To(Equal(50))
		})

		It("yields nothing when slices outnumber particles", func() {
			b, err := beam.NewFromTable(makeTable(3))
			Expect(err).NotTo(HaveOccurred())

			seq, err := b.SlicesN(5)
			Expect(err).NotTo(HaveOccurred())
			Expect(collect(seq)).To(BeEmpty())
		})

		It("fails on an empty beam", func() {
			_, err := beam.New().Slices()
			Expect(err).To(MatchError(beam.ErrNoDistribution))
		})

		It("rejects non-positive slice counts", func() {
			b, err := beam.NewFromTable(makeTable(10))
			Expect(err).NotTo(HaveOccurred())

			_, err = b.SlicesN(0)
			Expect(err).To(MatchError(beam.ErrSliceCount))
		})

		It("rejects distributions without the five canonical columns", func() {
			tb, err := phasespace.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
			Expect(err).NotTo(HaveOccurred())
			b, err := beam.NewFromTable(tb)
			Expect(err).NotTo(HaveOccurred())

			_, err = b.SlicesN(2)
			Expect(err).To(MatchError(beam.ErrColumnCount))
		})
	})
})
