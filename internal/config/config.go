// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Export   ExportConfig   `mapstructure:"export"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AnalyzerConfig 存储问题分类相关的配置。
// 关键词列表留空时，分类器会回退到内置默认值。
type AnalyzerConfig struct {
	Brand              string   `mapstructure:"brand"`
	DefinitionKeywords []string `mapstructure:"definition_keywords"`
	HowToKeywords      []string `mapstructure:"howto_keywords"`
	BatchSize          int      `mapstructure:"batch_size"`
}

// ExportConfig 存储分析结果导出相关的配置。
type ExportConfig struct {
	OutputDir   string `mapstructure:"output_dir"`
	PreviewRows int    `mapstructure:"preview_rows"`
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}
