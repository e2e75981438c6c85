package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Decision     Decision     `mapstructure:",squash"`
	Execution    Execution    `mapstructure:",squash"`
	AnalysisSync AnalysisSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Redis struct {
	URL       string        `mapstructure:"redis_url"`
	ReportTTL time.Duration `mapstructure:"redis_report_ttl"`
	Enabled   bool          `mapstructure:"redis_enabled"`
}

type Meta struct {
	BaseURL             string        `mapstructure:"meta_base_url"`
	URL                 string        `mapstructure:"meta_url"`
	Version             string        `mapstructure:"meta_version"`
	AccessToken         string        `mapstructure:"meta_access_token"`
	AppID               string        `mapstructure:"meta_app_id"`
	AppSecret           string        `mapstructure:"meta_app_secret"`
	LongLivedToken      string        `mapstructure:"meta_long_lived_token"`
	RequestTimeout      time.Duration `mapstructure:"meta_request_timeout"`
	PageLimit           int           `mapstructure:"meta_page_limit"`
	QuizCompleteAction  string        `mapstructure:"meta_quiz_complete_action_type"`
	TokenRefreshEnabled bool          `mapstructure:"meta_token_refresh_enabled"`
	TokenExpiresAt      time.Time     `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Decision guarda os limites padrão da análise. Cada requisição pode sobrescrever
// qualquer um deles.
type Decision struct {
	MinCTR                float64 `mapstructure:"decision_min_ctr"`
	TargetCTR             float64 `mapstructure:"decision_target_ctr"`
	MaxCPA                float64 `mapstructure:"decision_max_cpa"`
	MinImpressions        int64   `mapstructure:"decision_min_impressions"`
	BudgetIncreasePercent float64 `mapstructure:"decision_budget_increase_percent"`
	BudgetDecreasePercent float64 `mapstructure:"decision_budget_decrease_percent"`
	MinDailyBudget        float64 `mapstructure:"decision_min_daily_budget"`
	MaxDailyBudget        float64 `mapstructure:"decision_max_daily_budget"`
	ConversionEvent       string  `mapstructure:"decision_conversion_event"`
	PauseUnderperformers  bool    `mapstructure:"decision_auto_pause_underperformers"`
	ScaleWinners          bool    `mapstructure:"decision_auto_scale_winners"`
	AlertOnHighCPA        bool    `mapstructure:"decision_alert_on_high_cpa"`
	MaxConcurrentFetches  int     `mapstructure:"decision_max_concurrent_fetches"`
}

// Defaults converte a configuração carregada na política de domínio
func (d Decision) Defaults() domain.DecisionConfig {
	return domain.DecisionConfig{
		MinCTR:                d.MinCTR,
		TargetCTR:             d.TargetCTR,
		MaxCPA:                d.MaxCPA,
		MinImpressions:        d.MinImpressions,
		BudgetIncreasePercent: d.BudgetIncreasePercent,
		BudgetDecreasePercent: d.BudgetDecreasePercent,
		MinDailyBudget:        d.MinDailyBudget,
		MaxDailyBudget:        d.MaxDailyBudget,
		ConversionEvent:       domain.ConversionEvent(d.ConversionEvent),
		AutoActions: domain.AutoActions{
			PauseUnderperformers: d.PauseUnderperformers,
			ScaleWinners:         d.ScaleWinners,
			AlertOnHighCPA:       d.AlertOnHighCPA,
		},
	}
}

type Execution struct {
	DryRun      bool `mapstructure:"execution_dry_run"`
	ApplyBudget bool `mapstructure:"execution_apply_budget"`
}

type AnalysisSync struct {
	CronSchedule string   `mapstructure:"analysis_sync_cron"`
	AccountIDs   []string `mapstructure:"analysis_sync_account_ids"`
	DateRange    string   `mapstructure:"analysis_sync_date_range"`
	AutoExecute  bool     `mapstructure:"analysis_sync_auto_execute"`
	Enabled      bool     `mapstructure:"analysis_sync_enabled"`
}

func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/ads_autopilot?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_REPORT_TTL", "24h")
	v.SetDefault("REDIS_ENABLED", false)

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v22.0")
	v.SetDefault("META_APP_ID", "your_app_id")
	v.SetDefault("META_APP_SECRET", "your_app_secret")
	v.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	v.SetDefault("META_REQUEST_TIMEOUT", "30s")
	v.SetDefault("META_PAGE_LIMIT", 100)
	v.SetDefault("META_QUIZ_COMPLETE_ACTION_TYPE", "offsite_conversion.fb_pixel_custom")
	v.SetDefault("META_TOKEN_REFRESH_ENABLED", false)

	// Limites padrão da análise de performance
	v.SetDefault("DECISION_MIN_CTR", 1.0)
	v.SetDefault("DECISION_TARGET_CTR", 2.0)
	v.SetDefault("DECISION_MAX_CPA", 5.0)
	v.SetDefault("DECISION_MIN_IMPRESSIONS", 500)
	v.SetDefault("DECISION_BUDGET_INCREASE_PERCENT", 20)
	v.SetDefault("DECISION_BUDGET_DECREASE_PERCENT", 30)
	v.SetDefault("DECISION_MIN_DAILY_BUDGET", 0) // 0 = sem limite
	v.SetDefault("DECISION_MAX_DAILY_BUDGET", 0) // 0 = sem limite
	v.SetDefault("DECISION_CONVERSION_EVENT", string(domain.ConversionQuizComplete))
	v.SetDefault("DECISION_AUTO_PAUSE_UNDERPERFORMERS", false)
	v.SetDefault("DECISION_AUTO_SCALE_WINNERS", false)
	v.SetDefault("DECISION_ALERT_ON_HIGH_CPA", true)
	v.SetDefault("DECISION_MAX_CONCURRENT_FETCHES", 4)

	v.SetDefault("EXECUTION_DRY_RUN", false)
	v.SetDefault("EXECUTION_APPLY_BUDGET", false)

	v.SetDefault("ANALYSIS_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	v.SetDefault("ANALYSIS_SYNC_ACCOUNT_IDS", "")
	v.SetDefault("ANALYSIS_SYNC_DATE_RANGE", string(domain.DateRangeLast7Days))
	v.SetDefault("ANALYSIS_SYNC_AUTO_EXECUTE", false)
	v.SetDefault("ANALYSIS_SYNC_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(viper.GetViper())
}

// load decodifica a configuração de uma instância do viper já preparada
func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(config.Meta.BaseURL, "/"), config.Meta.Version)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)
	config.AnalysisSync.AccountIDs = compact(config.AnalysisSync.AccountIDs)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Decision.Defaults().Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
