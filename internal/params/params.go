package params

const (
	// Trials is the default number of Solovay–Strassen rounds.
	//
	// A composite candidate survives a single round with probability at most 1/2,
	// so 10 rounds leave an error probability of at most 2⁻¹⁰.
	Trials = 10

	// MinWitness is the smallest witness drawn by the Solovay–Strassen test.
	// Witnesses are sampled from [MinWitness, b-1].
	MinWitness = 3

	// MinCandidate is the smallest odd candidate for which [MinWitness, b-1]
	// is non empty.
	MinCandidate = MinWitness + 2

	StatParam = 64

	BitsRSAPrime = 1024
	BitsRSA      = 2 * BitsRSAPrime // = 2048

	// RSATrials is the number of rounds used when generating primes, so that
	// a composite is accepted with probability at most 2⁻ˢᵗᵃᵗ.
	RSATrials = StatParam

	// SieveBound is the upper bound on the small primes used to discard
	// candidates before running the probabilistic test.
	SieveBound = 1 << 12
)
