package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Log", func() {
	var logs *observer.ObservedLogs

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		SetLogger(zap.New(core))
	})

	AfterEach(func() {
		SetLogLevel(LogLevelNothing)
		logger = newLogger(zap.NewDevelopmentConfig())
	})

	It("the log level has the correct numeric value", func() {
		Expect(LogLevelNothing).To(BeEquivalentTo(0))
		Expect(LogLevelError).To(BeEquivalentTo(1))
		Expect(LogLevelInfo).To(BeEquivalentTo(2))
		Expect(LogLevelDebug).To(BeEquivalentTo(3))
	})

	It("log level nothing", func() {
		SetLogLevel(LogLevelNothing)
		Debugf("debug")
		Infof("info")
		Errorf("err")
		Expect(logs.Len()).To(BeZero())
	})

	It("log level err", func() {
		SetLogLevel(LogLevelError)
		Debugf("debug")
		Infof("info")
		Errorf("err")
		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].Message).To(Equal("err"))
	})

	It("log level info", func() {
		SetLogLevel(LogLevelInfo)
		Debugf("debug")
		Infof("info %d", 7)
		Errorf("err")
		Expect(logs.Len()).To(Equal(2))
		Expect(logs.All()[0].Message).To(Equal("info 7"))
	})

	It("log level debug", func() {
		SetLogLevel(LogLevelDebug)
		Debugf("debug")
		Infof("info")
		Errorf("err")
		Expect(logs.Len()).To(Equal(3))
	})

	It("says whether debug is enabled", func() {
		Expect(Debug()).To(BeFalse())
		SetLogLevel(LogLevelDebug)
		Expect(Debug()).To(BeTrue())
	})

	Context("reading from env", func() {
		BeforeEach(func() {
			Expect(Debug()).To(BeFalse())
		})

		AfterEach(func() {
			os.Unsetenv(logEnv)
		})

		It("reads DEBUG", func() {
			os.Setenv(logEnv, "DEBUG")
			readLoggingEnv()
			Expect(Debug()).To(BeTrue())
		})

		It("reads info", func() {
			os.Setenv(logEnv, "info")
			readLoggingEnv()
			Expect(level.Enabled(zapcore.InfoLevel)).To(BeTrue())
			Expect(Debug()).To(BeFalse())
		})

		It("ignores an empty value", func() {
			readLoggingEnv()
			Expect(level.Enabled(zapcore.ErrorLevel)).To(BeFalse())
		})
	})
})
