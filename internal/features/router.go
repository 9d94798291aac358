package features

import (
	"github.com/jakoblorz/flutterforge/internal/models"
)

const routerTemplate = `import 'package:flutter/material.dart';
import 'package:go_router/go_router.dart';
import 'package:flutter_riverpod/flutter_riverpod.dart';
import 'package:{{ .Project }}/core/providers/theme_provider.dart';

/// A provider that exposes the GoRouter instance
/// This allows the router to be accessed from anywhere in the app
/// and makes it easy to test and mock
final routerProvider = Provider<GoRouter>((ref) {
  return GoRouter(
    initialLocation: '/',
    routes: [
      GoRoute(
        path: '/',
        builder: (context, state) => const HomePage(),
      ),
      GoRoute(
        path: '/second',
        builder: (context, state) => const SecondPage(),
      ),
    ],
    errorBuilder: (context, state) => Scaffold(
      body: Center(
        child: Text('Error: ${state.error}'),
      ),
    ),
  );
});

class HomePage extends ConsumerWidget {
  const HomePage({super.key});

  @override
  Widget build(BuildContext context, WidgetRef ref) {
    final themeMode = ref.watch(themeProvider);

    return Scaffold(
      appBar: AppBar(
        title: Text('{{ .Project }}'),
        actions: [
          IconButton(
            icon: Icon(
              themeMode == ThemeMode.dark ? Icons.light_mode : Icons.dark_mode,
            ),
            onPressed: () => ref.read(themeProvider.notifier).toggleTheme(),
          ),
        ],
      ),
      body: Center(
        child: Column(
          mainAxisAlignment: MainAxisAlignment.center,
          children: [
            Text(
              'Welcome to {{ .Project }}',
              style: Theme.of(context).textTheme.headlineMedium,
            ),
            const SizedBox(height: 16),
            Text(
              'This is your home page',
              style: Theme.of(context).textTheme.bodyLarge,
            ),
            const SizedBox(height: 24),
            ElevatedButton(
              onPressed: () => context.go('/second'),
              child: const Text('Go to Second Page'),
            ),
          ],
        ),
      ),
    );
  }
}

class SecondPage extends ConsumerWidget {
  const SecondPage({super.key});

  @override
  Widget build(BuildContext context, WidgetRef ref) {
    final themeMode = ref.watch(themeProvider);

    return Scaffold(
      appBar: AppBar(
        title: Text('{{ .Project }} - Second Page'),
        leading: IconButton(
          icon: const Icon(Icons.arrow_back),
          onPressed: () => context.go('/'),
        ),
        actions: [
          IconButton(
            icon: Icon(
              themeMode == ThemeMode.dark ? Icons.light_mode : Icons.dark_mode,
            ),
            onPressed: () => ref.read(themeProvider.notifier).toggleTheme(),
          ),
        ],
      ),
      body: Center(
        child: Column(
          mainAxisAlignment: MainAxisAlignment.center,
          children: [
            Text(
              'Second Page',
              style: Theme.of(context).textTheme.headlineMedium,
            ),
            const SizedBox(height: 16),
            Text(
              'You can navigate back to the home page',
              style: Theme.of(context).textTheme.bodyLarge,
            ),
            const SizedBox(height: 24),
            ElevatedButton(
              onPressed: () => context.go('/'),
              child: const Text('Go Back Home'),
            ),
          ],
        ),
      ),
    );
  }
}
`

const mainDartTemplate = `import 'package:{{ .Project }}/theme/app_theme.dart';
import 'package:{{ .Project }}/core/providers/theme_provider.dart';
import 'package:{{ .Project }}/router/router.dart';
import 'package:flutter/material.dart';
import 'package:flutter_riverpod/flutter_riverpod.dart';

void main() {
  runApp(
    const ProviderScope(
      child: MyApp(),
    ),
  );
}

class MyApp extends ConsumerWidget {
  const MyApp({super.key});

  @override
  Widget build(BuildContext context, WidgetRef ref) {
    final themeMode = ref.watch(themeProvider);
    final router = ref.watch(routerProvider);

    return MaterialApp.router(
      title: '{{ .Project }}',
      theme: AppTheme.lightTheme,
      darkTheme: AppTheme.darkTheme,
      themeMode: themeMode,
      routerConfig: router,
    );
  }
}
`

const widgetTestTemplate = `import 'package:flutter/material.dart';
import 'package:flutter_test/flutter_test.dart';
import 'package:flutter_riverpod/flutter_riverpod.dart';
import 'package:{{ .Project }}/main.dart';

void main() {
  group('App', () {
    testWidgets('displays correct app name in AppBar', (WidgetTester tester) async {
      await tester.pumpWidget(
        const ProviderScope(
          child: MyApp(),
        ),
      );

      expect(find.text('{{ .Project }}'), findsOneWidget);

      final appBarFinder = find.byType(AppBar);
      expect(appBarFinder, findsOneWidget);

      expect(
        find.descendant(
          of: appBarFinder,
          matching: find.text('{{ .Project }}'),
        ),
        findsOneWidget,
      );
    });
  });
}
`

// Router installs go_router navigation, the routed main.dart and a
// matching widget test. It needs Theme Support because both the pages
// and main.dart watch the theme provider.
type Router struct{}

func (Router) Name() string { return "Router Support" }

func (Router) Dependencies() []string { return []string{"Theme Support"} }

func (Router) PackageRequirements() []models.PackageRequirement {
	return []models.PackageRequirement{
		models.NewPackageRequirement("go_router", "^13.2.0"),
	}
}

func (Router) Render(projectName string, config models.Config) (map[string]string, error) {
	return renderAll(map[string]string{
		"lib/router/router.dart": routerTemplate,
		"lib/main.dart":          mainDartTemplate,
		"test/widget_test.dart":  widgetTestTemplate,
	}, templateData{Project: projectName, Config: config})
}
