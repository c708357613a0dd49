package constants

// Catalog

const (
	DialectRedshift          = "redshift"
	DialectSnowflake         = "snowflake"
	DialectDuckDB            = "duckdb"
	DialectDefault           = DialectRedshift
	DefaultLogDataURL        = "s3://udacity-dend/log_data/"
	DefaultSongDataURL       = "s3://udacity-dend/song_data/"
	SentinelSongID           = "None" // songplays.song_id and artist_id when no staged song matches
	SentinelUserID           = 0
	NextSongPage             = "NextSong"
	ParamIAMRole             = "IAMRole"
	ParamLogData             = "LogData"
	ParamSongData            = "SongData"
	StatementTerminator      = ";"
	RedactedText             = "xxxxxxx"
	OutputFormatSQL          = "sql"
	OutputFormatYAML         = "yaml"
	OutputFormatJSON         = "json"
	StageAll                 = "all"
	ServiceName              = "dwhpipe"
	EnvVarPrefix             = "DWH" // prefixed for environment variables in twelveFactorMode
	EnvVarIAMRoleARN         = EnvVarPrefix + "_IAM_ROLE_ARN"
	EnvVarS3LogData          = EnvVarPrefix + "_S3_LOG_DATA"
	EnvVarS3SongData         = EnvVarPrefix + "_S3_SONG_DATA"
	ConfigDir                = ".dwhpipe"
	ConfigFileName           = "dwh.cfg"
	ConfigSectionCluster     = "CLUSTER"
	ConfigSectionIAMRole     = "IAM_ROLE"
	ConfigSectionS3          = "S3"
	IAMRoleResourcePrefix    = "role/"
	IAMServiceName           = "iam"
	S3Scheme                 = "s3"
	TimeFormatYearSeconds    = "20060102T150405" // used in rendered script headers
	TimeFormatYearSecondsRgx = "[0-9]{4}[0-9]{2}[0-9]{2}T[0-9]{6}"
)

// Actions

const (
	ActionFuncsCommandRender  = "render"
	ActionFuncsCommandPlan    = "plan"
	ActionFuncsCommandConfig  = "config"
	ActionFuncsSubCommandShow = "show"
)
