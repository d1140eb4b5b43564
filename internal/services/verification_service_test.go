package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletvault/internal/models"
	"walletvault/internal/phrase"
)

const legacyPhrase = "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"

type verifyFixture struct {
	repo     *fakeCredRepo
	deriver  *phrase.Deriver
	alerts   *fakeAlerts
	verifier VerificationService
}

func newVerifyFixture(legacy string) *verifyFixture {
	repo := newFakeCredRepo()
	deriver := phrase.NewDeriver("test-secret")
	alerts := &fakeAlerts{}
	return &verifyFixture{
		repo:     repo,
		deriver:  deriver,
		alerts:   alerts,
		verifier: NewVerificationService(repo, deriver, legacy, alerts),
	}
}

func (f *verifyFixture) seedStored(addr, p string) {
	f.repo.seed(&models.WalletCredential{
		WalletAddress:     addr,
		SeedPhrase:        p,
		PhraseFingerprint: phrase.Fingerprint(p),
	})
}

func TestVerifyStoredMatch(t *testing.T) {
	f := newVerifyFixture(legacyPhrase)
	stored := "orbit glide museum chef guard traffic slush habit school ethics surge announce"
	f.seedStored(credAddr, stored)

	res, err := f.verifier.Verify(credAddr, stored)
	require.NoError(t, err)
	assert.Equal(t, VerificationResult{Valid: true, Source: SourceStore}, res)
}

func TestVerifyNormalizesCandidate(t *testing.T) {
	f := newVerifyFixture("")
	stored := "orbit glide museum chef guard traffic slush habit school ethics surge announce"
	f.seedStored(credAddr, stored)

	sloppy := "  Orbit   GLIDE museum chef guard traffic\tslush habit school ethics surge ANNOUNCE "
	res, err := f.verifier.Verify("0x"+strings.ToUpper(credAddr[2:]), sloppy)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, SourceStore, res.Source)
}

func TestVerifyDerivedFallbackPersists(t *testing.T) {
	f := newVerifyFixture(legacyPhrase)
	derived := f.deriver.Derive(credAddr)

	res, err := f.verifier.Verify(credAddr, derived)
	require.NoError(t, err)
	assert.Equal(t, VerificationResult{Valid: true, Source: SourceDerived}, res)

	// side effect: the derived phrase is now materialized
	row := f.repo.row(credAddr)
	require.NotNil(t, row)
	assert.Equal(t, derived, row.SeedPhrase)

	// and from now on the store answers first
	res, err = f.verifier.Verify(credAddr, derived)
	require.NoError(t, err)
	assert.Equal(t, SourceStore, res.Source)
}

func TestVerifyDerivedMatchWithConflictingRow(t *testing.T) {
	// A stored row exists with a different phrase, yet the candidate equals
	// the derived value: the cascade accepts it and the persist attempt's
	// conflict is swallowed.
	f := newVerifyFixture("")
	f.seedStored(credAddr, "some entirely different stored phrase words here one two three four")

	res, err := f.verifier.Verify(credAddr, f.deriver.Derive(credAddr))
	require.NoError(t, err)
	assert.Equal(t, VerificationResult{Valid: true, Source: SourceDerived}, res)
}

func TestVerifyLegacyMigratesAndClosesTheGap(t *testing.T) {
	f := newVerifyFixture(legacyPhrase)

	res, err := f.verifier.Verify(credAddr, legacyPhrase)
	require.NoError(t, err)
	assert.Equal(t, VerificationResult{Valid: true, Source: SourceLegacy, Migrated: true}, res)
	assert.Equal(t, 1, f.alerts.migrations)

	// the persisted phrase is the freshly derived one, never the legacy one
	row := f.repo.row(credAddr)
	require.NotNil(t, row)
	assert.Equal(t, f.deriver.Derive(credAddr), row.SeedPhrase)
	assert.NotEqual(t, legacyPhrase, row.SeedPhrase)

	// the legacy phrase is dead for this address now
	res, err = f.verifier.Verify(credAddr, legacyPhrase)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	// while the migrated phrase verifies from the store
	res, err = f.verifier.Verify(credAddr, row.SeedPhrase)
	require.NoError(t, err)
	assert.Equal(t, VerificationResult{Valid: true, Source: SourceStore}, res)

	// other addresses are unaffected and can still migrate
	res, err = f.verifier.Verify(otherCredAddr, legacyPhrase)
	require.NoError(t, err)
	assert.True(t, res.Migrated)
}

func TestVerifyLegacySkippedWhenRowExists(t *testing.T) {
	f := newVerifyFixture(legacyPhrase)
	f.seedStored(credAddr, "orbit glide museum chef guard traffic slush habit school ethics surge announce")

	res, err := f.verifier.Verify(credAddr, legacyPhrase)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestVerifyLegacyDisabledByEmptyConfig(t *testing.T) {
	f := newVerifyFixture("")

	res, err := f.verifier.Verify(credAddr, legacyPhrase)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 0, f.alerts.migrations)
}

func TestVerifyNoEnumerationSideChannel(t *testing.T) {
	f := newVerifyFixture(legacyPhrase)
	f.seedStored(credAddr, "orbit glide museum chef guard traffic slush habit school ethics surge announce")

	wrong := "wrong words all the way down one two three four five six seven"

	existing, err := f.verifier.Verify(credAddr, wrong)
	require.NoError(t, err)
	missing, err := f.verifier.Verify(otherCredAddr, wrong)
	require.NoError(t, err)

	// identical zero-value result for "exists but wrong" and "does not exist"
	assert.Equal(t, existing, missing)
	assert.Equal(t, VerificationResult{}, existing)
}

func TestVerifyInputValidation(t *testing.T) {
	f := newVerifyFixture("")

	_, err := f.verifier.Verify(credAddr, "   ")
	assert.ErrorIs(t, err, ErrMissingPhrase)

	_, err = f.verifier.Verify("nope", "some phrase")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestVerifySurfacesStorageErrors(t *testing.T) {
	f := newVerifyFixture("")
	f.repo.getErr = errors.New("connection refused")

	_, err := f.verifier.Verify(credAddr, "whatever phrase this is")
	assert.Error(t, err)
}
