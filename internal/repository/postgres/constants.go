package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errUserNotFound       = "user not found"
	errPodcastNotFound    = "podcast not found"
	errEpisodeNotFound    = "episode not found"
	errEmailAlreadyExists = "user with this email already exists"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedOpenMigrationConnFmt    = "failed to open migration connection: %w"
	errFailedSetDialectFmt           = "failed to set goose dialect: %w"
	errFailedRunMigrationsFmt        = "goose up failed: %w"

	errFailedCreateUserFmt = "failed to create user: %w"
	errFailedGetUserFmt    = "failed to get user: %w"
	errFailedUpdateUserFmt = "failed to update user: %w"

	errFailedCreatePodcastFmt = "failed to create podcast: %w"
	errFailedGetPodcastFmt    = "failed to get podcast: %w"
	errFailedListPodcastsFmt  = "failed to list podcasts: %w"
	errFailedScanPodcastFmt   = "failed to scan podcast: %w"
	errIteratePodcastsFmt     = "error iterating podcasts: %w"
	errFailedUpdatePodcastFmt = "failed to update podcast: %w"
	errFailedDeletePodcastFmt = "failed to delete podcast: %w"

	errFailedCreateEpisodeFmt = "failed to create episode: %w"
	errFailedGetEpisodeFmt    = "failed to get episode: %w"
	errFailedListEpisodesFmt  = "failed to list episodes: %w"
	errFailedScanEpisodeFmt   = "failed to scan episode: %w"
	errIterateEpisodesFmt     = "error iterating episodes: %w"
	errFailedUpdateEpisodeFmt = "failed to update episode: %w"
	errFailedDeleteEpisodeFmt = "failed to delete episode: %w"

	errFailedCreateReviewFmt = "failed to create review: %w"

	errFailedCreateSubscriptionFmt = "failed to create subscription: %w"
	errFailedListSubscriptionsFmt  = "failed to list subscriptions: %w"
	errFailedScanSubscriptionFmt   = "failed to scan subscription: %w"
	errIterateSubscriptionsFmt     = "error iterating subscriptions: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }

	errFailedCreateUser = func(err error) error { return fmt.Errorf(errFailedCreateUserFmt, err) }
	errFailedGetUser    = func(err error) error { return fmt.Errorf(errFailedGetUserFmt, err) }
	errFailedUpdateUser = func(err error) error { return fmt.Errorf(errFailedUpdateUserFmt, err) }

	errFailedCreatePodcast = func(err error) error { return fmt.Errorf(errFailedCreatePodcastFmt, err) }
	errFailedGetPodcast    = func(err error) error { return fmt.Errorf(errFailedGetPodcastFmt, err) }
	errFailedListPodcasts  = func(err error) error { return fmt.Errorf(errFailedListPodcastsFmt, err) }
	errFailedScanPodcast   = func(err error) error { return fmt.Errorf(errFailedScanPodcastFmt, err) }
	errIteratePodcasts     = func(err error) error { return fmt.Errorf(errIteratePodcastsFmt, err) }
	errFailedUpdatePodcast = func(err error) error { return fmt.Errorf(errFailedUpdatePodcastFmt, err) }
	errFailedDeletePodcast = func(err error) error { return fmt.Errorf(errFailedDeletePodcastFmt, err) }

	errFailedCreateEpisode = func(err error) error { return fmt.Errorf(errFailedCreateEpisodeFmt, err) }
	errFailedGetEpisode    = func(err error) error { return fmt.Errorf(errFailedGetEpisodeFmt, err) }
	errFailedListEpisodes  = func(err error) error { return fmt.Errorf(errFailedListEpisodesFmt, err) }
	errFailedScanEpisode   = func(err error) error { return fmt.Errorf(errFailedScanEpisodeFmt, err) }
	errIterateEpisodes     = func(err error) error { return fmt.Errorf(errIterateEpisodesFmt, err) }
	errFailedUpdateEpisode = func(err error) error { return fmt.Errorf(errFailedUpdateEpisodeFmt, err) }
	errFailedDeleteEpisode = func(err error) error { return fmt.Errorf(errFailedDeleteEpisodeFmt, err) }

	errFailedCreateReview = func(err error) error { return fmt.Errorf(errFailedCreateReviewFmt, err) }

	errFailedCreateSubscription = func(err error) error { return fmt.Errorf(errFailedCreateSubscriptionFmt, err) }
	errFailedListSubscriptions  = func(err error) error { return fmt.Errorf(errFailedListSubscriptionsFmt, err) }
	errFailedScanSubscription   = func(err error) error { return fmt.Errorf(errFailedScanSubscriptionFmt, err) }
	errIterateSubscriptions     = func(err error) error { return fmt.Errorf(errIterateSubscriptionsFmt, err) }
)
