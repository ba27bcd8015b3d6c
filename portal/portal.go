// Package portal abstracts the hosting game portal's SDK. Builds that run
// outside a portal use the logging no-op adapter.
package portal

import "driftwood/logging"

// Adapter is the surface the game calls into at lifecycle boundaries.
// Implementations must invoke the ad callbacks exactly once, on the game's
// update goroutine.
type Adapter interface {
	LoadingStart()
	LoadingFinished()
	GameplayStart()
	GameplayStop()

	// ShowInterstitial reports completion; gameplay stays paused until then.
	ShowInterstitial(done func())
	// ShowRewarded reports whether the player earned the reward.
	ShowRewarded(done func(rewarded bool))
}

// Noop satisfies Adapter with log lines only. Desktop builds use it.
type Noop struct{}

func (Noop) LoadingStart()    { logging.L.Debugw("portal: loading start") }
func (Noop) LoadingFinished() { logging.L.Debugw("portal: loading finished") }
func (Noop) GameplayStart()   { logging.L.Debugw("portal: gameplay start") }
func (Noop) GameplayStop()    { logging.L.Debugw("portal: gameplay stop") }

func (Noop) ShowInterstitial(done func()) {
	logging.L.Debugw("portal: interstitial skipped")
	if done != nil {
		done()
	}
}

func (Noop) ShowRewarded(done func(rewarded bool)) {
	logging.L.Debugw("portal: rewarded ad skipped")
	if done != nil {
		done(false)
	}
}
